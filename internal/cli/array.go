package cli

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrymomot/utilkit/pkg/collection"
)

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func (a *App) arrayDedupe(_ context.Context, args []string) error {
	fs := newFlagSet("array dedupe")
	byIndex := fs.Bool("index", false, "use the first-index filter implementation")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	items := fs.Args()
	if len(items) == 1 {
		items = splitList(items[0])
	}

	var result []string
	if *byIndex {
		result = collection.DedupeByIndex(items)
	} else {
		result = collection.Dedupe(items)
	}
	return writeLine(a.stdout, strings.Join(result, ","))
}

func (a *App) runPair(name string, args []string, op func(x, y []string) []string) error {
	fs := newFlagSet(name)
	left := fs.String("a", "", "first comma separated list")
	right := fs.String("b", "", "second comma separated list")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	return writeLine(a.stdout, strings.Join(op(splitList(*left), splitList(*right)), ","))
}

func (a *App) arrayDiff(_ context.Context, args []string) error {
	return a.runPair("array diff", args, collection.SymmetricDifference[string])
}

func (a *App) arrayIntersect(_ context.Context, args []string) error {
	return a.runPair("array intersect", args, collection.Intersection[string])
}

func (a *App) arrayClone(_ context.Context, args []string) error {
	fs := newFlagSet("array clone")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	raw, err := singleArg(fs)
	if err != nil {
		return err
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	clone, err := collection.CloneJSON(items)
	if err != nil {
		return err
	}
	return writeJSON(a.stdout, clone)
}
