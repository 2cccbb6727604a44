// Package logger provides a thin factory around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// The package exposes a single factory, New, that creates a *slog.Logger
// configured by a set of Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level, by value or by name
//   - Supply default slog.Attr values applied to every record
//
// Helper constructors such as Field, Transition, Messages and Error live in
// attr.go and keep attribute naming consistent across form packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/formkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevelName("debug"),
//	)
//	log.Debug("field validated",
//	    logger.Field("price"),
//	    logger.Messages(errs),
//	)
//
// Discard returns a logger that drops every record; it is the default for
// form fields that were not given a logger.
//
// # Error Handling
//
// Error and Messages produce an attribute only when there is something to
// record, so they can be passed unconditionally:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
