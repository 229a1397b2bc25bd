package retry

import (
	"context"
	"time"
)

// Classifier decides whether an error is worth another attempt.
type Classifier interface {
	IsTransient(err error) bool
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(err error) bool

func (f ClassifierFunc) IsTransient(err error) bool { return f(err) }

// Strategy supplies the wait before each retry.
type Strategy interface {
	// NextDelay returns the wait before retry number attempt (0-based).
	NextDelay(attempt int) time.Duration

	// MaxAttempts is the number of retries after the first call; negative means unlimited.
	MaxAttempts() int
}

// Retrier runs an operation until it succeeds, fails permanently or runs
// out of attempts.
type Retrier struct {
	classifier Classifier
	strategy   Strategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// New creates a Retrier. Panics if classifier or strategy is nil.
func New(classifier Classifier, strategy Strategy) *Retrier {
	if classifier == nil {
		panic("retry: nil classifier")
	}
	if strategy == nil {
		panic("retry: nil strategy")
	}
	return &Retrier{classifier: classifier, strategy: strategy}
}

// WithOnRetry returns a copy that calls fn before each wait.
func (r *Retrier) WithOnRetry(fn func(attempt int, err error, delay time.Duration)) *Retrier {
	clone := *r
	clone.onRetry = fn
	return &clone
}

// Do runs op, retrying transient failures. It returns nil, the first
// permanent error, the last transient error, or the context's error.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error) error {
	err := op(ctx)
	limit := r.strategy.MaxAttempts()

	for attempt := 0; err != nil && r.classifier.IsTransient(err); attempt++ {
		if limit >= 0 && attempt >= limit {
			break
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		delay := r.strategy.NextDelay(attempt)
		if r.onRetry != nil {
			r.onRetry(attempt, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		err = op(ctx)
	}
	return err
}
