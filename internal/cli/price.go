package cli

import (
	"context"

	"github.com/dmitrymomot/utilkit/pkg/logger"
	"github.com/dmitrymomot/utilkit/pkg/price"
)

func (a *App) priceFormat(ctx context.Context, args []string) error {
	fs := newFlagSet("price format")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	raw, err := singleArg(fs)
	if err != nil {
		return err
	}

	result, ok := price.Format(raw)
	if !ok {
		return ErrNoResult
	}

	a.log.DebugContext(ctx, "formatted price", logger.Component("price"), logger.Input(raw))
	return writeLine(a.stdout, result)
}
