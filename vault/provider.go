package vault

import (
	"github.com/happywht/gg-mange/services/logging"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func NewProvider(db *gorm.DB, logger *logging.Service) Store {
	return NewStore(db, logger)
}

var Module = fx.Options(
	fx.Provide(NewProvider),
)
