package build

import (
	"io"

	"github.com/btcsuite/btclog/v2"
)

// NewDefaultLogHandler returns the console handler configured by cfg, writing
// to w. A disabled console logger yields a handler that discards everything.
func NewDefaultLogHandler(cfg *LogConfig, w io.Writer) btclog.Handler {
	if cfg.Console.Disable {
		w = io.Discard
	}

	return btclog.NewDefaultHandler(w, cfg.Console.HandlerOptions()...)
}
