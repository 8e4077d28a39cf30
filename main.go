package main

import (
	"errors"
	"log"
	"os"

	"github.com/cbteal/LinkedList/options"
	"github.com/cbteal/LinkedList/script"
	"github.com/cbteal/LinkedList/util"
	"github.com/urfave/cli/v2"
)

const VERSION = "1.0.0"

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
	app := &cli.App{
		Name:    "llist",
		Usage:   "Drive a singly linked list, stack or queue from the command line.",
		Version: VERSION,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "seed a collection and run operations against it",
				UsageText: "llist run --kind stack --values 1,2,3 --ops push:4,pop,size",
				Flags:     options.Flags,
				Action: func(ctx *cli.Context) error {
					opts, err := options.ParseOptions(ctx)
					if err != nil {
						return err
					}
					runner := &script.Runner{
						Kind:   opts.Kind,
						Out:    os.Stdout,
						Logger: opts.Logger(),
						Strict: opts.Strict,
					}
					if err = runner.Run(opts.Values, opts.Steps); err != nil {
						return util.WithCode(err)
					}
					return nil
				},
			},
			{
				Name:  "demo",
				Usage: "walk through list, stack and queue behaviour",
				Flags: options.LoggingFlags,
				Action: func(ctx *cli.Context) error {
					opts := options.ParseLoggingOptions(ctx)
					script.Demo(os.Stdout, opts.Logger())
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		var errorWithCode *util.ErrorWithCode
		if errors.As(err, &errorWithCode) {
			os.Exit(errorWithCode.StatusCode)
		}
		os.Exit(1)
	}
}
