// SPDX-License-Identifier: MPL-2.0

package ext

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned by CheckedFactorial when the result does not fit in T.
var ErrOverflow = errors.New("factorial overflows")

type (
	// FactorialOf is implemented by types that carry factorial as a method.
	FactorialOf[T any] interface {
		Factorial() T
	}

	// Int is an int with a Factorial method.
	Int int

	// OverflowError reports the first n whose factorial does not fit.
	OverflowError struct {
		N    uint64
		Type string
	}
)

var _ FactorialOf[Int] = Int(0)

// Factorial returns n!, computed as the product 1*2*...*n. It returns 1 for any
// n <= 1 and wraps silently on overflow, like the underlying integer arithmetic.
func Factorial[T constraints.Integer](n T) T {
	res := T(1)
	for i := T(2); i <= n; i++ {
		res *= i
		if i == n {
			break // i++ would wrap at the type's maximum
		}
	}
	return res
}

// CheckedFactorial is Factorial with overflow detection.
func CheckedFactorial[T constraints.Integer](n T) (T, error) {
	res := T(1)
	for i := T(2); i <= n; i++ {
		next := res * i
		if next/i != res {
			return 0, &OverflowError{N: uint64(i), Type: fmt.Sprintf("%T", n)}
		}
		res = next
		if i == n {
			break
		}
	}
	return res, nil
}

// Factorial returns i!.
func (i Int) Factorial() Int {
	return Factorial(i)
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%d! does not fit in %s", e.N, e.Type)
}

// Unwrap returns ErrOverflow so callers can use errors.Is for category checks.
func (e *OverflowError) Unwrap() error { return ErrOverflow }
