package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/utilkit/pkg/logger"
	"github.com/dmitrymomot/utilkit/pkg/timefmt"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseMoment accepts epoch milliseconds or one of timeLayouts in loc.
func parseMoment(s string, loc *time.Location) (any, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return nil, errors.Join(ErrInvalidTime, fmt.Errorf("%q", s))
}

type timeFormatter func(v any, opts ...timefmt.Option) (string, bool)

func (a *App) runTime(ctx context.Context, name string, args []string, format timeFormatter) error {
	fs := newFlagSet(name)
	dateSep := fs.String("ds", a.cfg.DateSeparator, "date separator")
	timeSep := fs.String("ts", a.cfg.TimeSeparator, "time separator")
	tpl := fs.String("t", a.cfg.Template, "template with {y} {m} {d} {h} {i} {s} {w} tokens")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	raw, err := singleArg(fs)
	if err != nil {
		return err
	}

	moment, err := parseMoment(raw, a.loc)
	if err != nil {
		return err
	}

	result, ok := format(moment,
		timefmt.WithLocation(a.loc),
		timefmt.WithDateSeparator(*dateSep),
		timefmt.WithTimeSeparator(*timeSep),
		timefmt.WithTemplate(*tpl),
	)
	if !ok {
		return ErrNoResult
	}

	a.log.DebugContext(ctx, "formatted time", logger.Component("timefmt"), logger.Input(raw))
	return writeLine(a.stdout, result)
}

func (a *App) timeDateTime(ctx context.Context, args []string) error {
	return a.runTime(ctx, "time datetime", args, timefmt.FormatDateTime)
}

func (a *App) timeDate(ctx context.Context, args []string) error {
	return a.runTime(ctx, "time date", args, timefmt.FormatDate)
}

func (a *App) timeTemplate(ctx context.Context, args []string) error {
	return a.runTime(ctx, "time template", args, timefmt.FormatTemplate)
}
