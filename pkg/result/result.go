package result

// Result is a two-variant container: exactly one of value or error is set.
// The zero value is a failure with an empty Error; callers should only build
// Results through Success and Failure.
type Result[T any] struct {
	value T
	err   Error
	ok    bool
}

// Success wraps a value in a successful Result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure wraps an Error in a failed Result. Because the type parameter is
// free, a shared pipeline stage can produce a failure shaped for whatever T
// the specific operation returns.
func Failure[T any](err Error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result holds an error.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the wrapped value. Only meaningful when IsSuccess.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the wrapped error. Only meaningful when IsFailure.
func (r Result[T]) Err() Error {
	return r.err
}

// Match dispatches to onSuccess or onFailure without exposing the tag.
func Match[T, U any](r Result[T], onSuccess func(T) U, onFailure func(Error) U) U {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
