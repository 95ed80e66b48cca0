package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Runtime (R001-R019)
	"R001": {
		Category: CategoryRuntime,
		Message:  "Store not provided",
		Detail:   "A shared-store cell was mounted outside the context-driven page, which is the only provider of the store.",
	},
	"R002": {
		Category: CategoryRuntime,
		Message:  "Handler not found",
		Detail:   "The clicked element is no longer in the rendered tree. The view re-rendered or switched before the click arrived.",
	},
	"R003": {
		Category: CategoryRuntime,
		Message:  "Session closed",
		Detail:   "The session was closed before the event could be processed.",
	},
	"R004": {
		Category: CategoryRuntime,
		Message:  "Event queue full",
		Detail:   "The session is receiving events faster than it can render them.",
	},
	"R005": {
		Category: CategoryRuntime,
		Message:  "Handler panicked",
		Detail:   "An event handler panicked. The session recovered and keeps running.",
	},

	// Protocol (R020-R039)
	"R020": {
		Category: CategoryProtocol,
		Message:  "Invalid message",
		Detail:   "The client sent a frame that is not a JSON message.",
	},
	"R021": {
		Category: CategoryProtocol,
		Message:  "Unknown message type",
		Detail:   `The client sent a message whose "t" field is not hello, fragment, click or ping.`,
	},
	"R022": {
		Category: CategoryProtocol,
		Message:  "WebSocket upgrade failed",
		Detail:   "The HTTP request could not be upgraded to a WebSocket connection.",
	},

	// Config (R040-R059)
	"R040": {
		Category: CategoryConfig,
		Message:  "Cannot read config file",
		Detail:   "The configuration file exists but could not be read or parsed.",
	},
	"R041": {
		Category: CategoryConfig,
		Message:  "Invalid server address",
		Detail:   "The listen address must be host:port or :port.",
	},
	"R042": {
		Category: CategoryConfig,
		Message:  "Invalid duration",
		Detail:   "Timeouts and intervals must be positive durations.",
	},
	"R043": {
		Category: CategoryConfig,
		Message:  "Invalid size",
		Detail:   "Buffer and queue sizes must be positive.",
	},
	"R044": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "The log level must be one of debug, info, warn or error.",
	},
	"R045": {
		Category: CategoryConfig,
		Message:  "Invalid log format",
		Detail:   "The log format must be text or json.",
	},
	"R046": {
		Category: CategoryConfig,
		Message:  "Invalid metrics path",
		Detail:   "The metrics path must start with / and must not shadow the application routes.",
	},

	// CLI (R060-R079)
	"R060": {
		Category: CategoryCLI,
		Message:  "Server failed",
		Detail:   "The HTTP server stopped with an error.",
	},
	"R061": {
		Category: CategoryCLI,
		Message:  "Terminal UI failed",
		Detail:   "The terminal program exited with an error.",
	},
}

// Codes returns every registered code in order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
