package fetch

import "errors"

// Sentinel kinds for upstream transport errors.
var (
	ErrUpstreamStatus      = errors.New("upstream returned non-success status")
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
)
