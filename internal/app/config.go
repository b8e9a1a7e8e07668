package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	Debug  bool      // log at debug level instead of warn
	LogOut io.Writer // log destination; defaults to os.Stderr
}
