// SPDX-License-Identifier: MPL-2.0

package blockconfig

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"patterns-cli/internal/issue"
	"patterns-cli/pkg/cueutil"
)

const (
	// operation names the action in every error returned by this package.
	operation = "load block config"

	schemaDefinition = "#Block"

	lessonHint = "Run 'patterns explain block' for a worked example"
)

//go:embed block_schema.cue
var blockSchema []byte

var (
	// ErrInvalidUTF8 is returned when the file is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("block config is not valid UTF-8")

	// ErrInvalidBlock is returned when a decoded block violates the schema.
	ErrInvalidBlock = errors.New("invalid block config")
)

// Config describes one block.
type Config struct {
	Title      string `toml:"title" json:"title"`
	Width      int    `toml:"width" json:"width"`
	Height     int    `toml:"height" json:"height"`
	ShouldOpen *bool  `toml:"should_open" json:"should_open,omitempty"`
	Tail       bool   `toml:"tail" json:"tail"`
}

// Area returns Width * Height.
func (c Config) Area() int {
	return c.Width * c.Height
}

// LoadSequential reads, decodes and validates the block file at path one step at
// a time.
func LoadSequential(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, wrap(path, err, "Check that the file exists and is readable")
	}

	text, err := toText(path, raw)
	if err != nil {
		return Config{}, wrap(path, err, "Save the file as UTF-8 text")
	}

	cfg, err := decode(path, text)
	if err != nil {
		return Config{}, wrap(path, err, decodeHints(path)...)
	}

	if err := validate(path, cfg); err != nil {
		return Config{}, wrap(path, err, "title must be non-empty; width and height must be positive", lessonHint)
	}

	slog.Debug("block config loaded", "path", path, "title", cfg.Title, "mode", "sequential")
	return cfg, nil
}

// Load behaves exactly like LoadSequential but keeps the intermediate values
// inside a scoped function literal.
func Load(path string) (Config, error) {
	cfg, err := func() (Config, error) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, wrap(path, err, "Check that the file exists and is readable")
		}
		text, err := toText(path, raw)
		if err != nil {
			return Config{}, wrap(path, err, "Save the file as UTF-8 text")
		}
		cfg, err := decode(path, text)
		if err != nil {
			return Config{}, wrap(path, err, decodeHints(path)...)
		}
		if err := validate(path, cfg); err != nil {
			return Config{}, wrap(path, err, "title must be non-empty; width and height must be positive", lessonHint)
		}
		return cfg, nil
	}()
	if err != nil {
		return Config{}, err
	}

	slog.Debug("block config loaded", "path", path, "title", cfg.Title, "mode", "scoped")
	return cfg, nil
}

// Describe writes the work summary for cfg.
func Describe(w io.Writer, cfg Config) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Work on -> %s\n", cfg.Title)
	fmt.Fprintf(&buf, "Total space: %d\n", cfg.Area())
	if cfg.ShouldOpen != nil {
		fmt.Fprintf(&buf, "Does it open by default? %t\n", *cfg.ShouldOpen)
	}
	if cfg.Tail {
		buf.WriteString("Has a tail.\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func toText(path string, raw []byte) (string, error) {
	if err := cueutil.CheckFileSize(raw, cueutil.DefaultMaxFileSize, path); err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	return string(raw), nil
}

func decode(path, text string) (Config, error) {
	if isCUE(path) {
		result, err := cueutil.ParseAndDecode[Config](blockSchema, []byte(text), schemaDefinition, cueutil.WithFilename(path))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidBlock, err)
		}
		return *result.Value, nil
	}

	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: unknown field\n%s", ErrInvalidBlock, strict.String())
		}
		return Config{}, err
	}
	return cfg, nil
}

// validate is a no-op for CUE files, which ParseAndDecode already checked.
func validate(path string, cfg Config) error {
	if isCUE(path) {
		return nil
	}
	if err := cueutil.ValidateGo(blockSchema, schemaDefinition, cfg, cueutil.WithFilename(path)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}
	return nil
}

func isCUE(path string) bool {
	return filepath.Ext(path) == ".cue"
}

func decodeHints(path string) []string {
	syntax := "Check the TOML syntax"
	if isCUE(path) {
		syntax = "Check the CUE syntax"
	}
	return []string{syntax, "Allowed keys: title, width, height, should_open, tail", lessonHint}
}

func wrap(path string, err error, suggestions ...string) error {
	return issue.NewErrorContext().
		WithOperation(operation).
		WithResource(path).
		WithSuggestions(suggestions...).
		Wrap(err).
		BuildError()
}
