// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - WaypointStore: Waypoint persistence in the simulator database
//   - ConfigStore: Tool configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - GridConverter: Grid-reference conversion. Without it, grid input is
//     unrecognized and every entry string uses the degrees/decimal-minutes
//     fallback form.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
