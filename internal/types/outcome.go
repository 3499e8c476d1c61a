package types

// OutcomeStatus tells a caller whether a value came from a successful
// generation or is a stand-in for a failed one.
type OutcomeStatus string

const (
	OutcomeOK       OutcomeStatus = "ok"
	OutcomeDegraded OutcomeStatus = "degraded"
	OutcomeFailed   OutcomeStatus = "failed"
)

// Outcome carries a value together with how it was obtained. For degraded
// outcomes Value holds the substitute and Err the suppressed failure.
type Outcome[T any] struct {
	Status OutcomeStatus
	Value  T
	Err    error
}

func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{Status: OutcomeOK, Value: v}
}

func Degraded[T any](v T, err error) Outcome[T] {
	return Outcome[T]{Status: OutcomeDegraded, Value: v, Err: err}
}

func Failed[T any](err error) Outcome[T] {
	return Outcome[T]{Status: OutcomeFailed, Err: err}
}

func (o Outcome[T]) IsDegraded() bool { return o.Status == OutcomeDegraded }
