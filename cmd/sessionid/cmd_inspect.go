package main

import (
	"fmt"

	"github.com/dtlskit/dtls/sessionid"
	"github.com/jessevdk/go-flags"
)

type inspectCommand struct {
	app *app
}

func newInspectCommand(a *app) *inspectCommand {
	return &inspectCommand{app: a}
}

func (x *inspectCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"inspect",
		"Describe hex encoded session ids",
		"Decode each argument as a hex session id and print its "+
			"length, hash and whether it fits the 32 byte protocol "+
			"limit; an empty argument describes the empty session id",
		x,
	)
	return err
}

func (x *inspectCommand) Execute(args []string) error {
	if err := x.app.setupLogging(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("at least one session id is required")
	}

	for _, arg := range args {
		sid, err := sessionid.FromHex(arg)
		if err != nil {
			return fmt.Errorf("cannot parse %q: %w", arg, err)
		}

		validErr := sid.Validate()
		if validErr != nil {
			log.Warnf("Session id %v: %v", sid, validErr)
		}

		_, err = fmt.Fprintf(x.app.out,
			"id=%v len=%d hash=%016x empty=%v valid=%v\n",
			sid, sid.Len(), sid.Hash(), sid.IsEmpty(),
			validErr == nil)
		if err != nil {
			return err
		}
	}

	return nil
}
