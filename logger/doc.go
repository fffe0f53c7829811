// Package logger provides structured logging for the Anvil client
// using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("anvil")
//	log.Debug("dispatching query", logger.Fields("operation", "getCast"))
package logger
