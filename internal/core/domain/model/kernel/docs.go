// Package kernel provides the shared domain primitives of the event planner.
//
// The package includes:
//   - Location: A named point of the municipality that traffic corridors connect
//   - UUID: A value object for surrogate identifiers of persisted catalogue records
//
// Both are immutable values validated at construction; their zero values fail
// Validate so accidental struct literals are caught early.
package kernel
