package commands

import (
	"go.uber.org/zap"

	"github.com/diogo/msgboard/internal/api"
	"github.com/diogo/msgboard/internal/config"
	"github.com/diogo/msgboard/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunBoard(client api.MessageClientInterface, cfg config.Config, logger *zap.Logger) error
	RunConfig() error
}

// GlobalFlags are the persistent flags of the root command
type GlobalFlags struct {
	APIURL string
	Mode   string
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Client, when set, is used instead of building one from the environment.
	Client api.MessageClientInterface

	// Logger, when set, replaces the file logger.
	Logger *zap.Logger

	// TUI is the terminal user interface.
	TUI TUIInterface

	// DotenvPath is loaded before the environment is read; empty skips it.
	DotenvPath string

	Flags GlobalFlags
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunBoard(client api.MessageClientInterface, cfg config.Config, logger *zap.Logger) error {
	return tui.RunBoard(client, cfg, logger)
}

func (d *DefaultTUI) RunConfig() error {
	return tui.RunConfig()
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:        &DefaultTUI{},
		DotenvPath: ".env",
	}
}
