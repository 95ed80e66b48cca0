// Package config loads the rerender host configuration.
//
// Values come from, in increasing priority: built-in defaults, an optional
// rerender.json in the working directory (or an explicit file), and
// environment variables prefixed RERENDER_ with dots replaced by
// underscores (RERENDER_SERVER_ADDRESS, RERENDER_LOG_LEVEL, ...).
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "address": ":8080",
//	    "shutdownTimeout": "10s",
//	    "readBufferSize": 4096,
//	    "writeBufferSize": 4096
//	  },
//	  "session": {
//	    "maxEventQueue": 64,
//	    "readTimeout": "60s",
//	    "writeTimeout": "10s",
//	    "heartbeatInterval": "30s"
//	  },
//	  "metrics": {"enabled": true, "path": "/metrics", "namespace": "rerender"},
//	  "tracing": {"enabled": false},
//	  "log": {"level": "info", "format": "text"},
//	  "render": {"pretty": false}
//	}
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    errors.Fprint(os.Stderr, err)
//	    os.Exit(1)
//	}
//	logger := cfg.Log.Logger(os.Stderr)
package config
