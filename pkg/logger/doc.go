// Package logger provides a small wrapper around log/slog used by the
// formguard binaries and the validator.
//
// New builds a *slog.Logger from functional options:
//
//   • WithFormat – text or json output (ParseFormat reads it from config)
//   • WithLevel / WithLevelName – minimum level
//   • WithEnvironment – per-environment defaults (see pkg/environment)
//   • WithAttr – static attributes
//   • WithContextExtractors / WithContextValue – attributes read from the
//     context of every *Context call, such as the run id of a CLI invocation
//
// Helper constructors in attr.go (Field, Reason, Form, RunID, Error, ...)
// keep attribute keys consistent. Helpers taking an optional value return an
// empty slog.Attr when there is nothing to log, so
//
//	log.Info("loaded schema", logger.Error(err))
//
// needs no nil check.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "formguard"),
//	    logger.WithContextValue(runIDKey{}, logger.RunID),
//	)
//	log.InfoContext(ctx, "form validated", logger.Form("registration"))
package logger
