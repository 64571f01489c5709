package tui

import "errors"

// ErrMissingWaypointService is returned when the waypoint service is not provided.
var ErrMissingWaypointService = errors.New("tui: waypoint service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
