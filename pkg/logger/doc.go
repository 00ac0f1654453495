// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute
// constructors, and transparent injection of values stored in a
// context.Context.
//
// The single factory, New, creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level, static
// attributes, and ContextExtractor callbacks that pull request-scoped
// attributes (for example a request id) out of the context on every log
// call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("accountd"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "account opened", logger.AccountNo(no))
//
// Helper constructors in attr.go (Error, Component, AccountNo, ...) keep
// attribute naming consistent across packages.
package logger
