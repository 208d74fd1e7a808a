package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/andreineculai/shadewalker/config"
	"github.com/andreineculai/shadewalker/internal/delivery"
	"github.com/andreineculai/shadewalker/internal/delivery/http"
	"github.com/andreineculai/shadewalker/internal/delivery/http/router/handler"
	logs "github.com/andreineculai/shadewalker/internal/infra/log"
	"github.com/andreineculai/shadewalker/internal/infra/overpass"
	"github.com/andreineculai/shadewalker/internal/infra/shadow"
	"github.com/andreineculai/shadewalker/internal/infra/sun"
	"github.com/andreineculai/shadewalker/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			overpass.NewFeatureRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			sun.NewCalculator,
			shadow.NewProjector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShadeService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewShadeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
