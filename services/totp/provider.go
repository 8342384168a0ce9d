package totp

import (
	"github.com/happywht/gg-mange/services/logging"
	"go.uber.org/fx"
)

func NewProvider(logger *logging.Service) *Engine {
	return NewEngine(logger)
}

var Module = fx.Options(
	fx.Provide(NewProvider),
)
