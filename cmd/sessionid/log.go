package main

import (
	"fmt"

	"github.com/btcsuite/btclog/v2"
	"github.com/dtlskit/dtls/build"
	"github.com/dtlskit/dtls/sessionid"
)

// cliSubsystem is the logging code of the command line tool itself.
const cliSubsystem = "SCLI"

// log is the logger of the tool. It stays disabled until setupLogging runs.
var log btclog.Logger = btclog.Disabled

// setupLogging creates the subsystem loggers on top of the configured console
// handler and applies the debug level flag.
func (a *app) setupLogging() error {
	if err := a.opts.Log.Validate(); err != nil {
		return err
	}

	handler := build.NewDefaultLogHandler(a.opts.Log, a.logOut)
	mgr := build.NewSubLoggerManager(handler)

	log = build.NewSubLogger(cliSubsystem, mgr.GenSubLogger)
	sessionid.UseLogger(
		build.NewSubLogger(sessionid.Subsystem, mgr.GenSubLogger),
	)

	err := build.ParseAndSetDebugLevels(a.opts.DebugLevel, mgr)
	if err != nil {
		return fmt.Errorf("unable to set debug level: %w", err)
	}

	return nil
}
