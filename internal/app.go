package internal

import (
	"context"

	"sellerflow/internal/clock"
	"sellerflow/internal/config"
	httpapi "sellerflow/internal/http"
	"sellerflow/internal/seed"
	"sellerflow/internal/service"
	"sellerflow/internal/store"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Run() error {
	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		clock.Module(),
		store.Module(),
		service.Module(),
		seed.Module(),
		httpapi.Module(),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	<-app.Wait()
	return nil
}
