// Package logger builds *slog.Logger instances from functional options or
// from env configuration, and provides attribute helpers that keep key names
// consistent across formkit packages.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the Format
// and wraps it with LogHandlerDecorator, which runs registered
// ContextExtractor callbacks on every record. This is how request ids set by
// the requestid middleware end up on log lines.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("formkit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form validated",
//	    logger.Form("signup"),
//	    logger.Valid(false),
//	)
//
// Error and Form return an empty Attr for nil/empty input, so they can be
// passed unconditionally.
package logger
