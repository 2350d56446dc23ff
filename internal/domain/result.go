package domain

import "errors"

// ResultState is the state of a Result.
type ResultState int

const (
	ResultPending ResultState = iota
	ResultSuccess
	ResultFailure
)

func (s ResultState) String() string {
	switch s {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	default:
		return "pending"
	}
}

// Result is the outcome of an I/O-facing operation: Pending while an external
// operation is outstanding, then Success with a value or Failure with a
// classified *Failure. The zero value is Pending.
type Result[T any] struct {
	state   ResultState
	value   T
	failure *Failure
}

// Pending returns a Result awaiting an external operation.
func Pending[T any]() Result[T] {
	return Result[T]{state: ResultPending}
}

// Success returns a successful Result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{state: ResultSuccess, value: v}
}

// Fail returns a failed Result. A nil f is treated as FailureUnknown so a
// failed Result always carries a kind.
func Fail[T any](f *Failure) Result[T] {
	if f == nil {
		f = &Failure{Kind: FailureUnknown, Detail: "failure without cause"}
	}
	return Result[T]{state: ResultFailure, failure: f}
}

// FailWith converts another Result's failure into a Result of type T.
// It must only be called on a failed Result.
func FailWith[T, U any](r Result[U]) Result[T] {
	return Fail[T](r.failure)
}

func (r Result[T]) State() ResultState { return r.state }
func (r Result[T]) IsPending() bool    { return r.state == ResultPending }
func (r Result[T]) IsSuccess() bool    { return r.state == ResultSuccess }
func (r Result[T]) IsFailure() bool    { return r.state == ResultFailure }

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.state == ResultSuccess
}

// Failure returns the failure and true, or nil and false.
func (r Result[T]) Failure() (*Failure, bool) {
	return r.failure, r.state == ResultFailure
}

// ErrPending is returned by Unwrap on a pending Result.
var ErrPending = errors.New("result pending")

// Unwrap converts the Result to Go's (value, error) form. The error of a failed
// Result is its *Failure.
func (r Result[T]) Unwrap() (T, error) {
	switch r.state {
	case ResultSuccess:
		return r.value, nil
	case ResultFailure:
		var zero T
		return zero, r.failure
	default:
		var zero T
		return zero, ErrPending
	}
}
