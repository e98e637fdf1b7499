package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/algorithms/internal/config"
	"github.com/marcodamonte/algorithms/internal/logging"
	"github.com/marcodamonte/algorithms/internal/render"
)

type app struct {
	cfg    *config.Config
	stdout io.Writer

	// set by the persistent pre-run; log may be injected by tests
	log *zap.Logger
	out *render.Renderer

	output   string
	logLevel string
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "snippets",
		Short:        "Classic interview algorithms and design patterns, one subcommand each",
		SilenceUsage: true,
		Long: "Classic interview algorithms and design patterns, one subcommand each.\n\n" +
			"Commands that take integers run on a built-in sample when given none. A leading\n" +
			"negative number reads as a flag, so end the flags with -- first: snippets profit -- -5 3",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.stdout)

	root.PersistentFlags().StringVarP(&a.output, "output", "o", a.cfg.Output, "Output format: text, json or yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", a.cfg.LogLevel, "Log level: debug, info, warn, error")

	root.AddCommand(
		a.compactCmd(),
		a.uniqueCmd(),
		a.profitCmd(),
		a.majorityCmd(),
		a.rotateCmd(),
		a.strstrCmd(),
		a.bubbleCmd(),
		a.containersCmd(),
		a.factoryCmd(),
		a.allCmd(),
	)
	return root
}

func (a *app) setup() error {
	format, err := render.ParseFormat(a.output)
	if err != nil {
		return err
	}
	a.out = render.New(a.stdout, format)

	if a.log != nil {
		return nil
	}
	level, err := logging.LevelFromString(a.logLevel)
	if err != nil {
		return err
	}
	a.log = logging.New(!a.cfg.JSONLog, level == zap.DebugLevel, level).
		With(zap.String("component", "snippets"))
	return nil
}

// parseInts converts every argument and reports all malformed ones together.
func parseInts(args []string) ([]int, error) {
	var errs *multierror.Error
	out := make([]int, 0, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("argument %d (%q) is not an integer", i+1, s))
			continue
		}
		out = append(out, v)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// intsOr parses args, falling back to a copy of sample when there are none.
func intsOr(args []string, sample ...int) ([]int, error) {
	if len(args) == 0 {
		return append([]int(nil), sample...), nil
	}
	return parseInts(args)
}

func joinInts(s []int) string {
	b := make([]byte, 0, len(s)*3)
	for i, v := range s {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return string(b)
}
