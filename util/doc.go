// Package util provides small generic helpers: pointer construction for
// optional payload fields, value coalescing for configuration defaults,
// and environment value cleanup.
package util
