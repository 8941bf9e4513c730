// Package preview serves a form definition as a live form in the browser.
//
// Each browser gets a session holding its own schema.State. The page is
// rendered on the server; a small inline client forwards DOM events over a
// websocket as {hid, event, value} frames. The server fires the matching
// handler, folds the message into the session state and answers with the
// re-rendered form.
//
// Routes:
//
//	GET /          full page for the session
//	GET /ws        live event socket
//	GET /share     signed token capturing the session state
//	GET /s/{token} page restored from a share token
//	GET /healthz   liveness probe
//	GET /metrics   Prometheus metrics
//
// The definition file can be watched and hot-reloaded with Watch.
package preview
