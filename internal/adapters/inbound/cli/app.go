package cli

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zestyzomato/zesty/internal/adapters/outbound/config"
	"github.com/zestyzomato/zesty/internal/adapters/outbound/history"
	"github.com/zestyzomato/zesty/internal/adapters/outbound/logging"
	"github.com/zestyzomato/zesty/internal/adapters/outbound/storage"
	"github.com/zestyzomato/zesty/internal/application"
	"github.com/zestyzomato/zesty/internal/domain"
)

const defaultConfigPath = config.FileName

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	dataPath   string
	backend    string
	logLevel   string
	logJSON    bool
}

// resolveConfig loads the config file and applies flag overrides.
// Switching to another backend by flag moves the data path to that backend's
// default only when the data path was itself a default; an explicit
// data_file is kept.
func (o *rootOptions) resolveConfig() (domain.Config, error) {
	cfg, err := config.New().Load(o.configPath)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}

	if o.backend != "" {
		b := domain.Backend(o.backend)
		if b != cfg.Backend && o.dataPath == "" && o.isDefaultDataPath(cfg) {
			cfg.DataFile = filepath.Join(filepath.Dir(o.configPath), domain.DefaultDataPath(b))
		}
		cfg.Backend = b
	}
	if o.dataPath != "" {
		cfg.DataFile = o.dataPath
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// isDefaultDataPath reports whether cfg.DataFile is the default location for
// cfg.Backend, either next to the config file or, without one, relative.
func (o *rootOptions) isDefaultDataPath(cfg domain.Config) bool {
	def := domain.DefaultDataPath(cfg.Backend)
	return cfg.DataFile == def || cfg.DataFile == filepath.Join(filepath.Dir(o.configPath), def)
}

func (o *rootOptions) logger(cmd *cobra.Command, cfg domain.Config) zerolog.Logger {
	if o.logJSON {
		return logging.NewJSON(cmd.ErrOrStderr(), cfg.LogLevel)
	}
	return logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
}

// openSession resolves config, opens the configured store and loads state.
func (o *rootOptions) openSession(cmd *cobra.Command) (*application.Session, domain.Config, error) {
	cfg, err := o.resolveConfig()
	if err != nil {
		return nil, domain.Config{}, err
	}

	store, err := storage.Open(cfg)
	if err != nil {
		return nil, domain.Config{}, err
	}

	log := o.logger(cmd, cfg)
	sess, err := application.OpenSession(store,
		application.WithLogger(log),
		application.WithStrictStatuses(cfg.StrictStatuses),
	)
	if err != nil {
		return nil, domain.Config{}, err
	}
	log.Debug().Str("backend", string(cfg.Backend)).Str("data", cfg.DataFile).Msg("session opened")
	return sess, cfg, nil
}

func (o *rootOptions) statusHistory() domain.StatusHistory {
	return history.New()
}

// isYes reports whether an availability answer means available.
func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return true
	}
	return false
}

func parseOrderID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("order id %q is not a number", s)
	}
	return id, nil
}

func parsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("price %q is not a number", s)
	}
	return p, nil
}
