package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/utilkit/pkg/logger"
)

type commandKey struct{}

// LoggerOption makes the logger attach the running command to every record.
func LoggerOption() logger.Option {
	return logger.WithContextValue("command", commandKey{})
}

type handlerFunc func(ctx context.Context, args []string) error

// App dispatches "<group> <op>" commands.
type App struct {
	cfg      Config
	loc      *time.Location
	output   OutputFormat
	log      *slog.Logger
	stdout   io.Writer
	commands map[string]map[string]handlerFunc
}

// New validates cfg and builds an App writing results to stdout.
// A nil logger discards log records.
func New(cfg Config, log *slog.Logger, stdout io.Writer) (*App, error) {
	loc, err := cfg.location()
	if err != nil {
		return nil, err
	}
	output, err := parseOutput(cfg.Output)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Discard()
	}
	if stdout == nil {
		stdout = io.Discard
	}

	a := &App{
		cfg:    cfg,
		loc:    loc,
		output: output,
		log:    log,
		stdout: stdout,
	}
	a.commands = map[string]map[string]handlerFunc{
		"time": {
			"datetime": a.timeDateTime,
			"date":     a.timeDate,
			"template": a.timeTemplate,
		},
		"price": {
			"format": a.priceFormat,
		},
		"array": {
			"dedupe":    a.arrayDedupe,
			"diff":      a.arrayDiff,
			"intersect": a.arrayIntersect,
			"clone":     a.arrayClone,
		},
		"query": {
			"parse":  a.queryParse,
			"build":  a.queryBuild,
			"filter": a.queryFilter,
			"lookup": a.queryLookup,
		},
	}
	return a, nil
}

// Run executes the command named by args[0] and args[1].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return a.fail(ctx, errors.Join(ErrUnknownCommand, fmt.Errorf("usage: utilkit <%s> <op> [flags] [args]", strings.Join(a.groups(), "|"))))
	}

	group, op := args[0], args[1]
	name := group + " " + op
	ops, ok := a.commands[group]
	if !ok {
		return a.fail(ctx, errors.Join(ErrUnknownCommand, fmt.Errorf("group %q", group)), logger.Command(name))
	}
	handler, ok := ops[op]
	if !ok {
		return a.fail(ctx, errors.Join(ErrUnknownCommand, fmt.Errorf("%s %q", group, op)), logger.Command(name))
	}

	ctx = context.WithValue(ctx, commandKey{}, name)
	start := time.Now()
	if err := handler(ctx, args[2:]); err != nil {
		return a.fail(ctx, err)
	}
	a.log.DebugContext(ctx, "command completed", logger.Duration(time.Since(start)))
	return nil
}

// fail logs err. Commands that were never dispatched carry no context value,
// so their name is passed in attrs.
func (a *App) fail(ctx context.Context, err error, attrs ...slog.Attr) error {
	a.log.LogAttrs(ctx, slog.LevelError, "command failed", append(attrs, logger.Error(err))...)
	return err
}

func (a *App) groups() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Join(ErrInvalidFlags, err)
	}
	return nil
}

// singleArg returns the only positional argument of fs.
func singleArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() < 1 {
		return "", errors.Join(ErrMissingArgument, fmt.Errorf("%s expects one argument", fs.Name()))
	}
	return fs.Arg(0), nil
}
