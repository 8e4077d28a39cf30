package options

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/cbteal/LinkedList/script"
	"github.com/cbteal/LinkedList/util"
	"github.com/urfave/cli/v2"
)

var LoggingFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "include source locations in diagnostics",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "quiet",
		Aliases:  []string{"q"},
		Value:    false,
		Usage:    "discard diagnostics for failed operations",
		Required: false,
	},
}

var Flags = append([]cli.Flag{
	&cli.StringFlag{
		Name:     "kind",
		Aliases:  []string{"k"},
		Value:    string(script.KindList),
		Usage:    "collection to drive: list, stack or queue",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "values",
		Value:    "",
		Usage:    "initial values, comma delimited, appended in order",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "ops",
		Aliases:  []string{"o"},
		Value:    "",
		Usage:    "operations to run, comma delimited, each op[:arg[:arg]]",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "strict",
		Value:    false,
		Usage:    "stop at the first failed operation and exit with its code",
		Required: false,
	},
}, LoggingFlags...)

type Options struct {
	Kind           script.Kind
	Values         []string
	Steps          []script.Step
	Strict         bool
	VerboseLogging bool
	Quiet          bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	items := strings.Split(flag, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		Values:         splitListFlag(c.String("values")),
		Strict:         c.Bool("strict"),
		VerboseLogging: c.Bool("verbose"),
		Quiet:          c.Bool("quiet"),
	}

	var err error
	opts.Kind, err = script.ParseKind(c.String("kind"))
	if err != nil {
		return nil, util.WithCode(err)
	}

	opts.Steps, err = script.Parse(opts.Kind, c.String("ops"))
	if err != nil {
		return nil, util.WithCode(err)
	}

	return opts, nil
}

// ParseLoggingOptions reads only the logging flags, for commands that take
// nothing else.
func ParseLoggingOptions(c *cli.Context) *Options {
	return &Options{
		VerboseLogging: c.Bool("verbose"),
		Quiet:          c.Bool("quiet"),
	}
}

// Logger returns the sink for operation diagnostics.
func (opts *Options) Logger() *log.Logger {
	if opts.Quiet {
		return log.New(io.Discard, "", 0)
	}
	flags := log.Ldate | log.Ltime
	if opts.VerboseLogging {
		flags |= log.Lshortfile
	}
	return log.New(os.Stderr, "", flags)
}
