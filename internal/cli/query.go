package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"

	"github.com/dmitrymomot/utilkit/pkg/logger"
	"github.com/dmitrymomot/utilkit/pkg/query"
)

func (a *App) outputFlag(fs *flag.FlagSet) *string {
	return fs.String("o", string(a.output), "output format: json, yaml or toml")
}

func decodeParams(raw string) (*query.Params, error) {
	var p query.Params
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	return &p, nil
}

func (a *App) queryParse(ctx context.Context, args []string) error {
	fs := newFlagSet("query parse")
	out := a.outputFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	raw, err := singleArg(fs)
	if err != nil {
		return err
	}
	format, err := parseOutput(*out)
	if err != nil {
		return err
	}

	p, err := query.Parse(raw)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNoResult
	}

	a.log.DebugContext(ctx, "parsed query", logger.Component("query"), logger.Input(raw), logger.Output(string(format)))
	return writeParams(a.stdout, format, p)
}

func (a *App) queryBuild(_ context.Context, args []string) error {
	fs := newFlagSet("query build")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	raw, err := singleArg(fs)
	if err != nil {
		return err
	}

	p, err := decodeParams(raw)
	if err != nil {
		return err
	}
	result, ok := query.Build(p)
	if !ok {
		return ErrNoResult
	}
	return writeLine(a.stdout, result)
}

func (a *App) queryFilter(_ context.Context, args []string) error {
	fs := newFlagSet("query filter")
	out := a.outputFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	raw, err := singleArg(fs)
	if err != nil {
		return err
	}
	format, err := parseOutput(*out)
	if err != nil {
		return err
	}

	p, err := decodeParams(raw)
	if err != nil {
		return err
	}
	filtered := query.Filter(p)
	if filtered == nil {
		return ErrNoResult
	}
	return writeParams(a.stdout, format, filtered)
}

// queryLookup decodes -value as JSON when possible, so 1 matches numbers and
// "\"1\"" matches strings; anything else is taken as a plain string.
func (a *App) queryLookup(_ context.Context, args []string) error {
	fs := newFlagSet("query lookup")
	key := fs.String("key", "", "field to match on")
	value := fs.String("value", "", "value to match")
	result := fs.String("result", "", "field to return")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	raw, err := singleArg(fs)
	if err != nil {
		return err
	}
	if *key == "" || *result == "" {
		return errors.Join(ErrMissingArgument, errors.New("-key and -result are required"))
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}

	var want any
	if err := json.Unmarshal([]byte(*value), &want); err != nil {
		want = *value
	}

	v, ok := query.Lookup(records, *key, want, *result)
	if !ok {
		return ErrNoResult
	}
	return writeLine(a.stdout, query.Stringify(v))
}
