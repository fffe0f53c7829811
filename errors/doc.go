// Package errors provides structured error types for the Anvil client.
// It distinguishes caller mistakes (wrong argument shapes, missing
// arguments) from payload validation failures, with machine-readable
// codes and optional per-field details.
package errors
