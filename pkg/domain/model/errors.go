package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization
var (
	ErrTagInvalidData   = goerr.NewTag("invalid_data")
	ErrTagInvalidConfig = goerr.NewTag("invalid_config")
)

// Sentinel errors for selector values that are not offered by a dashboard.
// Reaching either means the UI and the configuration have drifted apart.
var (
	ErrUnknownBreakdown = goerr.New("unknown breakdown")
	ErrUnknownMode      = goerr.New("unknown mode")
)
