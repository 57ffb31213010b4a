package services

import "errors"

// Failure classes surfaced by the content operations. Controllers map these to
// HTTP statuses; everything else stays in the logs.
var (
	// ErrRateLimited mirrors an upstream 429. Not retried here; the caller
	// decides when to try again.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrPaymentRequired mirrors an upstream 402.
	ErrPaymentRequired = errors.New("payment required")

	// ErrUpstream covers any other gateway or network failure. The upstream
	// detail is logged, never returned.
	ErrUpstream = errors.New("gateway request failed")

	// ErrParse means the model reply contained no usable JSON of the expected
	// shape and the operation has no safe fallback.
	ErrParse = errors.New("failed to parse model response")
)
