// Package retry re-runs operations that fail with transient errors, waiting
// with exponential backoff between attempts.
//
//	r := retry.New(retry.PostgresClassifier{}, retry.NewExponentialBackoff(3))
//	err := r.Do(ctx, func(ctx context.Context) error {
//	    return pool.Ping(ctx)
//	})
//
// A Retrier is immutable; WithOnRetry returns a configured copy, so one
// Retrier can be shared between goroutines.
package retry
