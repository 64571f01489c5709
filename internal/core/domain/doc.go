// Package domain defines the core business entities for hercnav.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Coordinate: A canonical latitude/longitude pair
//   - ParseResult: A recognized coordinate tagged with its notation
//   - Waypoint: A named navigation point as the simulator stores it
//   - Settings: Tool configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
