// Package middleware provides opt-in wrappers for repair providers: a
// per-call deadline, retries with exponential backoff for transient
// transport failures, and structured request logging.
//
//	p := repair.Wrap(openai.New(),
//	    middleware.Logging(slog.Default(), middleware.LogLevelMinimal),
//	    middleware.Retry(middleware.RetryConfig{MaxRetries: 2}),
//	    middleware.Timeout(30*time.Second),
//	)
//
// Nothing here is applied by default; a bare provider makes exactly one
// request per call.
package middleware
