// Package logs builds the process-wide slog.Logger from configuration.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"medify/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New creates the root slog.Logger. Output is JSON for aggregation, or a
// human-readable text handler when log.pretty is set for local runs.
func New(params Params) (*slog.Logger, error) {
	level, ok := levelNames[strings.ToLower(params.Config.Env.Log.Level)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", params.Config.Env.Log.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(slog.String("service", "medify")), nil
}
