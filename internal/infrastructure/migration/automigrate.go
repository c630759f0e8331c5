package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lipagate/lipagate/internal/infrastructure/persistence/models"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.MerchantModel{},
		&models.CreatorModel{},
		&models.ProductModel{},
		&models.PriceModel{},
		&models.ContentModel{},
		&models.ContentViewModel{},
		&models.SubscriptionModel{},
		&models.PaymentModel{},
		&models.PlanModel{},
		&models.PlatformSubscriptionModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema straight from the model structs.
// Suitable for development and the sqlite driver; production uses versioned
// SQL scripts instead.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

// Migrate runs GORM AutoMigrate over the given models
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting GORM auto migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	s.logger.Infow("GORM auto migration completed")
	return nil
}

// GetName returns the strategy name
func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
