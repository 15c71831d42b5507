package aggregate

import "github.com/samber/lo"

// Result is the outcome of one independent fetch: a value, or the reason it
// could not be obtained. Key identifies the item (e.g. a repository name).
type Result[T any] struct {
	Key   string
	Value T
	Err   error
}

func OK[T any](key string, v T) Result[T] {
	return Result[T]{Key: key, Value: v}
}

func Failed[T any](key string, err error) Result[T] {
	return Result[T]{Key: key, Err: err}
}

func (r Result[T]) Failed() bool { return r.Err != nil }

// Failures returns the failed results in their original order.
func Failures[T any](results []Result[T]) []Result[T] {
	return lo.Filter(results, func(r Result[T], _ int) bool {
		return r.Failed()
	})
}
