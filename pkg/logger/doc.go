// Package logger builds *slog.Logger instances for the utilkit command-line
// tool from functional options.
//
// The library packages never log; only the CLI front end does. New picks a
// text or JSON handler, applies static attributes and wraps the handler so
// that registered ContextExtractor callbacks can add attributes (such as the
// running command) from the context of every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "utilkit"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.ErrorContext(ctx, "formatting failed", logger.Input(raw), logger.Error(err))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so callers do not need a nil
// check before logging.
package logger
