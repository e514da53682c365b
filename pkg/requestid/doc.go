// Package requestid attaches a correlation identifier to every HTTP
// request.
//
// Middleware reuses a valid client-supplied X-Request-ID header or
// generates a UUIDv4, stores the id in the request context, and echoes it
// back in the response header. FromContext retrieves the id and
// LoggerExtractor injects it into slog records.
package requestid
