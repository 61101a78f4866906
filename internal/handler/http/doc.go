// Package http implements the HTTP transport layer of the notes API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, metrics, CORS, rate limiting and response compression are handled
// in this package before requests are delegated to the service layer.
//
// Every /api response is a JSON envelope: {"success": true, "data": ...} on
// success and {"success": false, "error": "..."} on failure.
package http
