// Package server provides HTTP routing, middleware, and the playlist handler for the resolver service.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Routes
//
//	POST /playlist → resolve {"url": "..."} into a playlist
//	GET  /health   → liveness probe
//
// # Errors
//
// Failures are written as {"detail": "..."} with the status chosen by [StatusFor].
// Upstream HTTP errors other than 404 keep the upstream status code.
//
// # Middleware
//
//   - [RequestID] assigns or propagates X-Request-ID
//   - [Logging] writes one structured line per request
//   - [Recover] turns panics into 500 responses
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
