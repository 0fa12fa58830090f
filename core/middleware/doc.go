// Package middleware groups the HTTP middlewares used by the server:
//
//   - rayid: assigns a unique request id (ray id) used for log correlation.
//   - auth: guards the API behind a shared API key.
//
// Each middleware lives in its own subpackage and returns a fiber.Handler.
package middleware
