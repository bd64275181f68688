package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// quillMain validates the global flags and dispatches to a subcommand.
// Usage errors from the subcommand print its usage and exit.
func quillMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.check(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	name, rest := args[0], args[1:]
	sub := cfg.Main.FindSub(cc, name)
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, name)
	}
	err = sub.Run(cc, rest)
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) check() error {
	switch {
	case cfg.J && cfg.Y:
		return fmt.Errorf("%w: -j and -y are exclusive", cli.ErrUsage)
	case cfg.Indent < 0:
		return fmt.Errorf("%w: -indent %d is negative", cli.ErrUsage, cfg.Indent)
	}
	return nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut == nil {
		return
	}
	if err := cfg.CloseOut(); err != nil {
		fmt.Fprintf(os.Stderr, "closing %s: %v\n", cfg.Out, err)
	}
}

// outOpt handles -o, sending command output to a file; "-" keeps stdout.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
