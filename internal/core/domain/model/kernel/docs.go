// Package kernel provides the shared domain primitives of the marketplace:
//   - UUID: identifier value object used by every aggregate
//   - Clock: source of the current time, injected so lifecycle timestamps
//     (checked_at, completed_at, reminder delays) are deterministic in tests
package kernel
