package access

import (
	"github.com/happywht/gg-mange/config"
	"github.com/happywht/gg-mange/services/logging"
	"go.uber.org/fx"
)

func NewProvider(cfg *config.Config, logger *logging.Service) *Gate {
	return NewGate(cfg, logger)
}

var Module = fx.Options(
	fx.Provide(NewProvider),
)
