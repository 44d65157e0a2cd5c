package cli

import (
	"github.com/mrz1836/quill/internal/config"
	"github.com/mrz1836/quill/internal/metrics"
	"github.com/mrz1836/quill/internal/output"
	"github.com/mrz1836/quill/internal/service/signer"
)

// CommandContext holds dependencies for CLI commands.
type CommandContext struct {
	Config    *config.Config
	Logger    *config.Logger
	Formatter *output.Formatter
	Signer    *signer.Service
}

// NewCommandContext creates a context with the given dependencies and a
// signer service bound to them.
func NewCommandContext(
	cfg *config.Config,
	logger *config.Logger,
	formatter *output.Formatter,
) *CommandContext {
	svcCfg := &signer.Config{Metrics: metrics.New()}
	// Nil pointers must not become non-nil interfaces.
	if cfg != nil {
		svcCfg.Config = cfg
	}
	if logger != nil {
		svcCfg.Logger = logger
	}

	return &CommandContext{
		Config:    cfg,
		Logger:    logger,
		Formatter: formatter,
		Signer:    signer.NewService(svcCfg),
	}
}

// WithSigner replaces the signer service.
func (c *CommandContext) WithSigner(s *signer.Service) *CommandContext {
	c.Signer = s
	return c
}
