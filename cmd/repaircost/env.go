package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/nvandessel/repaircost/internal/catalog"
	"github.com/nvandessel/repaircost/internal/config"
	"github.com/nvandessel/repaircost/internal/constants"
	"github.com/nvandessel/repaircost/internal/logging"
	"github.com/nvandessel/repaircost/internal/pathutil"
	"github.com/nvandessel/repaircost/internal/store"
)

// app bundles what every command needs after flags are parsed.
type app struct {
	cfg    *config.RepaircostConfig
	logger *slog.Logger
	json   bool
}

// loadApp resolves configuration (defaults, file, .env, environment, then
// root flags) and builds the logger. It does not validate: each command
// applies its own flag overrides first and then calls validate.
func loadApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		cfg.Simulation.Catalog = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.Logging.Format = constants.LogFormat(v)
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	return &app{
		cfg:    cfg,
		logger: logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()),
		json:   jsonOut,
	}, nil
}

// validate checks the configuration once every flag override is applied.
func (a *app) validate() error {
	return a.cfg.Validate()
}

// catalog loads the configured catalog or the built-in one.
func (a *app) catalog() (*catalog.Catalog, error) {
	if a.cfg.Simulation.Catalog == "" {
		return catalog.Default(), nil
	}
	path, err := pathutil.ExpandHome(a.cfg.Simulation.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog path: %w", err)
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	a.logger.Debug("catalog loaded", "path", pathutil.ShortenHome(path), "products", len(c.Entries))
	return c, nil
}

// seed returns the configured seed, deriving one from the clock when it is
// zero. The derived seed is logged so the run can be repeated.
func (a *app) seed() uint64 {
	if a.cfg.Simulation.Seed != 0 {
		return a.cfg.Simulation.Seed
	}
	seed := uint64(time.Now().UnixNano())
	a.logger.Info("no seed given, derived one from the clock", "seed", seed)
	return seed
}

// databasePath returns the report database path, falling back to
// ~/.repaircost/reports.db.
func (a *app) databasePath(flagValue string) (string, error) {
	switch {
	case flagValue != "":
		return pathutil.ExpandHome(flagValue)
	case a.cfg.Simulation.Database != "":
		return pathutil.ExpandHome(a.cfg.Simulation.Database)
	default:
		return store.DefaultPath()
	}
}

// overrideInt copies an int flag into dst when the user set it.
func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}

// overrideSeed copies --seed into dst when the user set it.
func overrideSeed(cmd *cobra.Command, dst *uint64) {
	if cmd.Flags().Changed("seed") {
		*dst, _ = cmd.Flags().GetUint64("seed")
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
