// Command hatgrow replays the growth of a hashed array tree and prints
// diagnostics about its layout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var countFlag = &cli.IntFlag{
	Name:    "count",
	Aliases: []string{"n"},
	Usage:   "number of elements to append",
	Value:   65,
	EnvVars: []string{"HATGROW_COUNT"},
}

var reserveFlag = &cli.IntFlag{
	Name:    "reserve",
	Aliases: []string{"r"},
	Usage:   "capacity to reserve before appending",
	EnvVars: []string{"HATGROW_RESERVE"},
}

func run(args []string, out io.Writer) error {

	app := cli.App{
		Name:    "hatgrow",
		Usage:   "replay hashed array tree growth",
		Version: versioninfo.Short(),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "disable colored output",
				EnvVars: []string{"HATGROW_NO_COLOR", "NO_COLOR"},
			},
			&cli.StringFlag{
				Name:    "trace",
				Usage:   "trace level of the container (debug, info, error)",
				Value:   "error",
				EnvVars: []string{"HATGROW_TRACE"},
			},
		},
		Before: func(c *cli.Context) error {
			setupTracing(c.String("trace"))
			configureColor(c.App.Writer, c.Bool("no-color"))
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdTable,
		cmdDump,
		cmdDot,
		cmdStats,
	}
	return app.Run(args)
}

// setupTracing routes the "hat" tracer to a Go standard logger.
func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("hat").SetTraceLevel(tracing.TraceLevelFromString(level))
}
