// Package payload defines the typed request payloads the Anvil API
// accepts: fill-PDF, generate-PDF, etch-packet, and forge-submit.
//
// Each payload kind has a From function that normalizes the supported
// input forms — a map, a raw JSON string or byte slice, or an already
// typed value — into the canonical struct and validates required
// fields. All forms funnel through the same struct, so the serialized
// request body is identical regardless of which form the caller used.
package payload
