package main

import (
	"errors"
	"fmt"

	"github.com/dtlskit/dtls/sessionid"
	"github.com/jessevdk/go-flags"
	"github.com/lightningnetwork/lnd/fn/v2"
)

const defaultCount = 1

// errDuplicateIDs is returned when --unique is set and the generated session
// ids collide.
var errDuplicateIDs = errors.New("duplicate session ids generated, " +
	"increase --size or lower --count")

type generateCommand struct {
	app *app

	Count  int  `long:"count" short:"n" description:"Number of session ids to generate"`
	Size   int  `long:"size" description:"Number of random bytes per session id, between 1 and 32"`
	Unique bool `long:"unique" description:"Fail if any two generated session ids are equal"`
}

func newGenerateCommand(a *app) *generateCommand {
	return &generateCommand{
		app:   a,
		Count: defaultCount,
		Size:  sessionid.RandomSize,
	}
}

func (x *generateCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"generate",
		"Generate random session ids",
		"Draw session ids from the system random source and print "+
			"them hex encoded, one per line",
		x,
	)
	return err
}

func (x *generateCommand) Execute(_ []string) error {
	if err := x.app.setupLogging(); err != nil {
		return err
	}

	if x.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", x.Count)
	}

	cfg := sessionid.DefaultConfig()
	cfg.Size = x.Size
	gen, err := sessionid.NewGenerator(cfg)
	if err != nil {
		return err
	}

	log.Debugf("Generating %d session id(s) of %d bytes", x.Count, x.Size)

	ids := make([]sessionid.ID, 0, x.Count)
	for i := 0; i < x.Count; i++ {
		sid, err := gen.Generate()
		if err != nil {
			return err
		}
		ids = append(ids, sid)
	}

	if x.Unique && fn.HasDuplicates(ids) {
		return errDuplicateIDs
	}

	for _, sid := range ids {
		if _, err := fmt.Fprintln(x.app.out, sid); err != nil {
			return err
		}
	}

	return nil
}
