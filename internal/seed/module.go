package seed

import (
	"sellerflow/internal/clock"
	"sellerflow/internal/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"seed",
		fx.Invoke(func(cfg config.Config, s Stores, clk clock.Clock, logger *zap.Logger) error {
			if !cfg.SeedData {
				return nil
			}
			if err := Load(s, clk); err != nil {
				return err
			}
			logger.Named("seed").Info("demo data loaded")
			return nil
		}),
	)
}
