package service

import "errors"

// Internal validation failures are package-level sentinels so callers can tell
// them apart from collaborator errors, which are always passed through
// unchanged.
var (
	ErrNoInputData     = errors.New("no input data provided")
	ErrNoUsableMetrics = errors.New("no usable numeric metrics after cleaning")
	ErrNoMarketData    = errors.New("no market trend data provided")
)
