// Package server provides HTTP routing, middleware, SSE streaming, and the
// demo application handlers.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// Each demo is one Handler: [TaskHandler] (background tasks with client
// polling), [StreamTaskHandler] and [LotteryHandler] (server sent events),
// [ItemHandler], [ContactHandler], and [DocumentHandler] (sqlite-backed
// forms and lists), [AuthHandler] (GitHub sign-in), and [IndexHandler].
//
// # Server Sent Events
//
// [Stream] writes a channel of [Event] values to a response in SSE wire
// format until the channel closes or the client disconnects. Producers own
// their channel: they push rendered fragments into it from a goroutine and
// close it when the stream is finished. Two shapes appear in the demos: a
// finite stream that pushes a single completion event, and an open-ended
// stream that pushes on a fixed cadence until the subscriber leaves.
//
// # Sessions
//
// [AuthHandler] runs the OAuth2 authorization code flow against GitHub,
// validating the state parameter (CSRF protection) and exchanging the code
// for a token. The token is used once to resolve the user, then discarded;
// what persists is a server-side session row keyed by an opaque cookie.
package server
