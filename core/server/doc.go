// Package server holds the HTTP server configuration section.
//
// It only carries settings consumed by the start command (port, API key,
// upload size limit); the Fiber app itself is assembled in cmd/start.go.
package server
