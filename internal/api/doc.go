// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal application services, translating HTTP concerns to
// business operations.
//
// Two surfaces share the same ExploreService: an HTML page for children
// (UIHandler) and a JSON API (WordHandler). Both read the caller's word
// history from the request context, where the session middleware puts it.
package api
