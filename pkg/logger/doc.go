// Package logger is a thin factory around log/slog.
//
// New builds a *slog.Logger from functional options: output format (text or
// json), minimum level, static attributes applied to every record, and
// ContextExtractor callbacks that pull request-scoped values (such as a
// request id) out of the context on every log call.
//
//	log := logger.New(
//		logger.WithDevelopment("localization-example"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// The package also provides small attribute constructors (Error, Component,
// Locale, …) so call sites agree on attribute keys.
package logger
