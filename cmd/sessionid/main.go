package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dtlskit/dtls/build"
	"github.com/jessevdk/go-flags"
)

const defaultDebugLevel = "info"

// globalOptions are the flags accepted before any sub command.
//
//nolint:lll
type globalOptions struct {
	DebugLevel string           `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	Log        *build.LogConfig `group:"log" namespace:"log"`
}

// subCommand is implemented by every command of the tool.
type subCommand interface {
	Register(parser *flags.Parser) error
}

// app carries the state shared between the sub commands.
type app struct {
	opts *globalOptions

	// out receives the command output, logOut the log lines.
	out    io.Writer
	logOut io.Writer
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)

	var flagErr *flags.Error
	switch {
	case err == nil:

	case errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp:
		fmt.Println(err)

	default:
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and executes the selected sub command.
func run(args []string, out, logOut io.Writer) error {
	opts := &globalOptions{
		DebugLevel: defaultDebugLevel,
		Log:        build.DefaultLogConfig(),
	}
	a := &app{
		opts:   opts,
		out:    out,
		logOut: logOut,
	}

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	commands := []subCommand{
		newGenerateCommand(a),
		newInspectCommand(a),
	}
	for _, command := range commands {
		if err := command.Register(parser); err != nil {
			return err
		}
	}

	_, err := parser.ParseArgs(args)

	return err
}
