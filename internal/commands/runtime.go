package commands

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/diogo/msgboard/internal/api"
	"github.com/diogo/msgboard/internal/config"
	"github.com/diogo/msgboard/internal/logging"
	"github.com/diogo/msgboard/internal/models"
)

// Runtime is everything a command needs, resolved once at startup
type Runtime struct {
	Env      config.Environment
	Settings config.Config
	Mode     string
	BaseURL  string
	Logger   *zap.Logger
	Client   api.MessageClientInterface
}

// Close flushes the logger
func (r *Runtime) Close() {
	if r == nil || r.Logger == nil {
		return
	}
	_ = r.Logger.Sync()
}

// Setup reads the environment and settings, then builds the logger and
// the client. The base address is fixed from here on.
func (d *Dependencies) Setup() (*Runtime, error) {
	env, err := config.LoadEnvironment(d.DotenvPath)
	if err != nil {
		return nil, err
	}

	mode := strings.ToLower(strings.TrimSpace(d.Flags.Mode))
	if mode == "" {
		mode = env.EffectiveMode(BuildMode)
	}
	switch mode {
	case models.ModeProduction, models.ModeDevelopment:
	default:
		return nil, fmt.Errorf("invalid mode %q: want %s or %s", mode, models.ModeProduction, models.ModeDevelopment)
	}

	override := d.Flags.APIURL
	if strings.TrimSpace(override) == "" {
		override = env.APIURL
	}
	baseURL, err := config.AbsoluteBase(config.ResolveBaseAddress(override, mode), env.Origin)
	if err != nil {
		return nil, err
	}

	settings, settingsErr := config.LoadConfig()

	logger := d.Logger
	if logger == nil {
		logPath := env.LogFile
		if logPath == "" {
			if logPath, err = config.GetLogPath(); err != nil {
				return nil, err
			}
		}
		if logger, err = logging.New(env.LogLevel, logPath); err != nil {
			return nil, err
		}
	}
	if settingsErr != nil {
		logger.Warn("using default settings", zap.Error(settingsErr))
	}

	client := d.Client
	if client == nil {
		c, err := api.NewClient(baseURL, api.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create client: %w", err)
		}
		client = c
	}

	logger.Info("runtime ready",
		zap.String("mode", mode),
		zap.String("base_url", baseURL),
		zap.String("version", Version),
	)

	return &Runtime{
		Env:      env,
		Settings: settings,
		Mode:     mode,
		BaseURL:  baseURL,
		Logger:   logger,
		Client:   client,
	}, nil
}
