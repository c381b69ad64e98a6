// SPDX-License-Identifier: MPL-2.0

package script

import (
	"errors"
	"fmt"

	"patterns-cli/internal/light"
	"patterns-cli/internal/light/marker"
	"patterns-cli/internal/light/naive"
	"patterns-cli/internal/light/payload"
)

const (
	// EffectApplied means the op changed the light.
	EffectApplied Effect = "applied"
	// EffectIgnored means the op was accepted but had no effect.
	EffectIgnored Effect = "ignored"
	// EffectReported means the op only observed the light.
	EffectReported Effect = "reported"
)

var (
	// ErrUnavailableWhileOff is wrapped when an intensity op targets an Off
	// typestate light, which has no such method.
	ErrUnavailableWhileOff = errors.New("intensity is unavailable while the light is off")

	// ErrIntensityUntracked is wrapped when an intensity op targets a variant
	// that does not model intensity in any state.
	ErrIntensityUntracked = errors.New("light variant does not track intensity")
)

type (
	// Effect describes what an op did to the light.
	Effect string

	// Step is the observable result of replaying one op.
	Step struct {
		Op        Op
		State     light.State
		Intensity light.Intensity
		Effect    Effect
		Rendered  string
	}

	// Trace is the sequence of steps produced by Run.
	Trace struct {
		Variant light.Variant
		Steps   []Step
	}

	// UnavailableError is returned when an op is not defined on the current
	// typed value.
	UnavailableError struct {
		Variant light.Variant
		Op      Op
		State   light.State
	}

	// machine drives one variant. Each implementation owns the current light.
	machine interface {
		toggle()
		set(level light.Intensity) (Effect, error)
		get() error
		snapshot() (light.State, light.Intensity, string)
	}

	naiveMachine struct {
		l *naive.Light
	}

	// markerMachine holds either a marker.Off or a marker.On.
	markerMachine struct {
		cur light.Switch
	}

	payloadMachine struct {
		cur payload.State
	}
)

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %q is not defined on a %s light that is %s", e.Variant, e.Op.Kind, e.Variant, e.State)
}

// Unwrap returns the sentinel matching the reason the op is unavailable.
func (e *UnavailableError) Unwrap() error {
	if e.Variant.TracksIntensity() {
		return ErrUnavailableWhileOff
	}
	return ErrIntensityUntracked
}

// Run replays ops against a fresh Off light of variant v. On error the trace
// holds the steps completed before the failing op.
func Run(v light.Variant, ops []Op) (Trace, error) {
	m, err := newMachine(v)
	if err != nil {
		return Trace{}, err
	}

	trace := Trace{Variant: v, Steps: make([]Step, 0, len(ops))}
	for _, op := range ops {
		effect, err := apply(m, op)
		if err != nil {
			var unavailable *UnavailableError
			if errors.As(err, &unavailable) {
				unavailable.Variant = v
				unavailable.Op = op
			}
			return trace, err
		}
		state, level, rendered := m.snapshot()
		trace.Steps = append(trace.Steps, Step{
			Op:        op,
			State:     state,
			Intensity: level,
			Effect:    effect,
			Rendered:  rendered,
		})
	}
	return trace, nil
}

// Final returns the last step, or the initial Off step when the trace is empty.
func (t Trace) Final() Step {
	if len(t.Steps) == 0 {
		return Step{State: light.StateOff, Intensity: light.IntensityOff, Rendered: "Light is Off"}
	}
	return t.Steps[len(t.Steps)-1]
}

func newMachine(v light.Variant) (machine, error) {
	switch v {
	case light.VariantNaive:
		return &naiveMachine{l: naive.New()}, nil
	case light.VariantMarker:
		return &markerMachine{cur: marker.New()}, nil
	case light.VariantPayload:
		return &payloadMachine{cur: payload.New()}, nil
	default:
		return nil, &light.InvalidVariantError{Value: v}
	}
}

func apply(m machine, op Op) (Effect, error) {
	switch op.Kind {
	case OpToggle:
		m.toggle()
		return EffectApplied, nil
	case OpSet:
		return m.set(op.Level)
	case OpGet:
		if err := m.get(); err != nil {
			return "", err
		}
		return EffectReported, nil
	case OpStatus:
		return EffectReported, nil
	default:
		return "", fmt.Errorf("unknown op %v", op.Kind)
	}
}

func (m *naiveMachine) toggle() { m.l.Toggle() }

func (m *naiveMachine) set(level light.Intensity) (Effect, error) {
	wasOn := m.l.IsOn()
	m.l.SetIntensity(level)
	if !wasOn {
		return EffectIgnored, nil
	}
	return EffectApplied, nil
}

func (m *naiveMachine) get() error { return nil }

func (m *naiveMachine) snapshot() (light.State, light.Intensity, string) {
	return light.StateOf(m.l), m.l.Intensity(), m.l.String()
}

func (m *markerMachine) toggle() {
	switch s := m.cur.(type) {
	case marker.Off:
		m.cur = s.Toggle()
	case marker.On:
		m.cur = s.Toggle()
	}
}

func (m *markerMachine) set(light.Intensity) (Effect, error) {
	return "", &UnavailableError{State: light.StateOf(m.cur)}
}

func (m *markerMachine) get() error {
	return &UnavailableError{State: light.StateOf(m.cur)}
}

func (m *markerMachine) snapshot() (light.State, light.Intensity, string) {
	return light.StateOf(m.cur), light.IntensityOff, fmt.Sprint(m.cur)
}

func (m *payloadMachine) toggle() {
	switch s := m.cur.(type) {
	case payload.Off:
		m.cur = s.Toggle()
	case payload.On:
		m.cur = s.Toggle()
	}
}

func (m *payloadMachine) set(level light.Intensity) (Effect, error) {
	on, ok := m.cur.(payload.On)
	if !ok {
		return "", &UnavailableError{State: light.StateOff}
	}
	on.SetIntensity(level)
	m.cur = on
	return EffectApplied, nil
}

func (m *payloadMachine) get() error {
	if _, ok := m.cur.(payload.On); !ok {
		return &UnavailableError{State: light.StateOff}
	}
	return nil
}

func (m *payloadMachine) snapshot() (light.State, light.Intensity, string) {
	if on, ok := m.cur.(payload.On); ok {
		return light.StateOn, on.Intensity(), on.String()
	}
	return light.StateOff, light.IntensityOff, m.cur.String()
}
