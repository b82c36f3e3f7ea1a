package migration

import (
	"github.com/bwmarrin/snowflake"
	authdomain "github.com/smallbiznis/carta/internal/auth/domain"
	catalogdomain "github.com/smallbiznis/carta/internal/catalog/domain"
	"github.com/smallbiznis/carta/internal/config"
	"github.com/smallbiznis/carta/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, genID *snowflake.Node) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql dev setups skip the versioned migrations.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&catalogdomain.Restaurant{},
				&catalogdomain.Category{},
				&catalogdomain.Product{},
			); err != nil {
				return err
			}
		}

		if cfg.BootstrapDemoData && !cfg.IsProduction() {
			return seed.EnsureDemoRestaurant(conn, genID, cfg.DemoOwnerEmail, cfg.DemoOwnerPassword)
		}
		return nil
	}),
)
