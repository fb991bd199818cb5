package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/utilkit/internal/cli"
	"github.com/dmitrymomot/utilkit/pkg/logger"
)

func newApp(t *testing.T, mutate ...func(*cli.Config)) (*cli.App, *bytes.Buffer) {
	t.Helper()

	cfg := cli.DefaultConfig()
	cfg.Timezone = "UTC"
	for _, m := range mutate {
		m(&cfg)
	}

	var out bytes.Buffer
	app, err := cli.New(cfg, logger.Discard(), &out)
	require.NoError(t, err)
	return app, &out
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("invalid timezone", func(t *testing.T) {
		t.Parallel()
		cfg := cli.DefaultConfig()
		cfg.Timezone = "Mars/Olympus_Mons"
		_, err := cli.New(cfg, nil, nil)
		require.ErrorIs(t, err, cli.ErrInvalidTimezone)
	})

	t.Run("invalid output", func(t *testing.T) {
		t.Parallel()
		cfg := cli.DefaultConfig()
		cfg.Output = "xml"
		_, err := cli.New(cfg, nil, nil)
		require.ErrorIs(t, err, cli.ErrUnsupportedOutput)
	})

	t.Run("nil logger and writer", func(t *testing.T) {
		t.Parallel()
		app, err := cli.New(cli.DefaultConfig(), nil, nil)
		require.NoError(t, err)
		require.NotNil(t, app)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "datetime from millis", args: []string{"time", "datetime", "0"}, want: "1970-01-01 00:00:00\n"},
		{name: "datetime separators", args: []string{"time", "datetime", "-ds", "/", "-ts", ".", "2024-03-05 07:08:09"}, want: "2024/03/05 07.08.09\n"},
		{name: "date from RFC3339", args: []string{"time", "date", "2024-12-31T23:59:59Z"}, want: "2024-12-31\n"},
		{name: "template", args: []string{"time", "template", "-t", "{y}年{m}月{d}日 {w}", "2024-03-05"}, want: "2024年03月05日 星期二\n"},
		{name: "template default", args: []string{"time", "template", "1700000000000"}, want: "2023-11-14 22:13:20\n"},
		{name: "invalid time", args: []string{"time", "date", "yesterday"}, wantErr: cli.ErrInvalidTime},
		{name: "missing time", args: []string{"time", "date"}, wantErr: cli.ErrMissingArgument},

		{name: "price", args: []string{"price", "format", "200000"}, want: "200,000.00\n"},
		{name: "price fraction", args: []string{"price", "format", "1234.5"}, want: "1,234.50\n"},
		{name: "price invalid", args: []string{"price", "format", "abc"}, wantErr: cli.ErrNoResult},

		{name: "dedupe args", args: []string{"array", "dedupe", "a", "b", "a", "c"}, want: "a,b,c\n"},
		{name: "dedupe list", args: []string{"array", "dedupe", "-index", "x,y,x"}, want: "x,y\n"},
		{name: "diff", args: []string{"array", "diff", "-a", "1,2,3", "-b", "2,3,4"}, want: "1,4\n"},
		{name: "intersect", args: []string{"array", "intersect", "-a", "1,2,2", "-b", "2,5"}, want: "2,2\n"},
		{name: "clone", args: []string{"array", "clone", `[{"a":1},[2,3],"x"]`}, want: "[{\"a\":1},[2,3],\"x\"]\n"},
		{name: "clone invalid", args: []string{"array", "clone", `{`}, wantErr: cli.ErrInvalidJSON},

		{name: "query build", args: []string{"query", "build", `{"q":"a b","page":2,"ok":true}`}, want: "q=a%20b&page=2&ok=true\n"},
		{name: "query build empty", args: []string{"query", "build", `{}`}, wantErr: cli.ErrNoResult},
		{name: "query parse empty", args: []string{"query", "parse", ""}, wantErr: cli.ErrNoResult},
		{name: "lookup number", args: []string{"query", "lookup", "-key", "id", "-value", "2", "-result", "name", `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`}, want: "b\n"},
		{name: "lookup string", args: []string{"query", "lookup", "-key", "code", "-value", "x1", "-result", "id", `[{"code":"x1","id":7}]`}, want: "7\n"},
		{name: "lookup miss", args: []string{"query", "lookup", "-key", "id", "-value", `"2"`, "-result", "name", `[{"id":2,"name":"b"}]`}, wantErr: cli.ErrNoResult},
		{name: "lookup missing key flag", args: []string{"query", "lookup", "-result", "name", `[]`}, wantErr: cli.ErrMissingArgument},

		{name: "no args", args: nil, wantErr: cli.ErrUnknownCommand},
		{name: "unknown group", args: []string{"math", "add"}, wantErr: cli.ErrUnknownCommand},
		{name: "unknown op", args: []string{"price", "parse"}, wantErr: cli.ErrUnknownCommand},
		{name: "bad flag", args: []string{"price", "format", "-x", "1"}, wantErr: cli.ErrInvalidFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			app, out := newApp(t)

			err := app.Run(context.Background(), tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunQueryParse(t *testing.T) {
	t.Parallel()

	t.Run("json keeps order", func(t *testing.T) {
		t.Parallel()
		app, out := newApp(t)
		require.NoError(t, app.Run(context.Background(), []string{"query", "parse", "?name=%E5%BC%A0&age=18&name=li"}))
		assert.Equal(t, "{\"name\":\"li\",\"age\":\"18\"}\n", out.String())
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		app, out := newApp(t)
		require.NoError(t, app.Run(context.Background(), []string{"query", "parse", "-o", "yaml", "b=2&a=1"}))
		assert.Equal(t, "b: \"2\"\na: \"1\"\n", out.String())
	})

	t.Run("toml from config", func(t *testing.T) {
		t.Parallel()
		app, out := newApp(t, func(c *cli.Config) { c.Output = "toml" })
		require.NoError(t, app.Run(context.Background(), []string{"query", "parse", "b=2&a=1"}))
		assert.Equal(t, "a = \"1\"\nb = \"2\"\n", out.String())
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		app, _ := newApp(t)
		err := app.Run(context.Background(), []string{"query", "parse", "a=%E0%A4%A"})
		require.Error(t, err)
	})

	t.Run("bad output flag", func(t *testing.T) {
		t.Parallel()
		app, _ := newApp(t)
		err := app.Run(context.Background(), []string{"query", "parse", "-o", "ini", "a=1"})
		require.ErrorIs(t, err, cli.ErrUnsupportedOutput)
	})
}

func TestRunQueryFilter(t *testing.T) {
	t.Parallel()

	app, out := newApp(t)
	input := `{"keep":"x","_private":"y","zero":0,"empty":"","obj":{},"list":[],"nested":{"a":1}}`
	require.NoError(t, app.Run(context.Background(), []string{"query", "filter", input}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, map[string]any{"keep": "x", "nested": map[string]any{"a": float64(1)}}, got)

	app, _ = newApp(t)
	err := app.Run(context.Background(), []string{"query", "filter", `{"_a":1}`})
	require.ErrorIs(t, err, cli.ErrNoResult)
}

func TestRunLogsCommand(t *testing.T) {
	t.Parallel()

	var logs, out bytes.Buffer
	log := logger.New(logger.WithOutput(&logs), logger.WithLevelName("debug"), cli.LoggerOption())

	cfg := cli.DefaultConfig()
	app, err := cli.New(cfg, log, &out)
	require.NoError(t, err)

	err = app.Run(context.Background(), []string{"price", "format", "nope"})
	require.ErrorIs(t, err, cli.ErrNoResult)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "command failed", entry["msg"])
	assert.Equal(t, "price format", entry["command"])
	assert.Equal(t, "ERROR", entry["level"])
}

func TestRunLogsUnknownCommand(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := logger.New(logger.WithOutput(&logs), cli.LoggerOption())
	app, err := cli.New(cli.DefaultConfig(), log, nil)
	require.NoError(t, err)

	err = app.Run(context.Background(), []string{"math", "add"})
	require.ErrorIs(t, err, cli.ErrUnknownCommand)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "math add", entry["command"])
}

func TestRunQueryParseKeepsMarkup(t *testing.T) {
	t.Parallel()

	app, out := newApp(t)
	require.NoError(t, app.Run(context.Background(), []string{"query", "parse", "a=%3Cb%3E&q=x%26y"}))
	assert.Equal(t, "{\"a\":\"<b>\",\"q\":\"x&y\"}\n", out.String())
}
