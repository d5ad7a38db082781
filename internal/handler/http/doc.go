// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing and access logging are
// handled in this package before requests are delegated to the service
// layer. Reads are served from the local mirror; writes go through the
// remote-first write service and surface remote failures as structured
// error bodies.
package http
