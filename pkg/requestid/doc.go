// Package requestid propagates an X-Request-ID header through request
// contexts so log records of one validation call can be correlated.
//
// Middleware keeps a well-formed incoming id and otherwise generates a UUID
// (github.com/google/uuid). LoggerExtractor plugs the id into pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
