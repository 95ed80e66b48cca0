// Package server hosts the lab over HTTP and WebSocket.
//
// Every browser tab gets its own Session: one component tree, one
// scheduler and one router, driven by a single event-loop goroutine. The
// thin client reports the address fragment and clicks; the session answers
// with full HTML snapshots of the current view and with fragment updates
// when the router navigates.
//
// Routes:
//
//	GET /                     HTML shell with the server render of the Overview
//	GET /_rerender/ws         WebSocket endpoint
//	GET /_rerender/client.js  thin client
//	GET /metrics              Prometheus metrics (when enabled)
//	GET /healthz              liveness probe
//
// Wire messages are JSON objects tagged by "t":
//
//	client → server  {"t":"hello","fragment":"/self-driven"}
//	                 {"t":"fragment","fragment":"/"}
//	                 {"t":"click","hid":"h3"}
//	                 {"t":"ping"}
//	server → client  {"t":"render","html":"...","location":"/"}
//	                 {"t":"fragment","fragment":"/","replace":true}
//	                 {"t":"error","code":"R002","message":"Handler not found"}
//	                 {"t":"pong"}
package server
