package main

import (
	"context"
	"log/slog"
	"os"

	"heritage/config"
	"heritage/internal/delivery"
	"heritage/internal/delivery/http"
	"heritage/internal/delivery/http/middleware"
	"heritage/internal/delivery/http/router/handler"
	"heritage/internal/domain/gateway"
	"heritage/internal/domain/service"
	"heritage/internal/infra/auth"
	"heritage/internal/infra/gatewayhttp"
	logs "heritage/internal/infra/log"
	"heritage/internal/infra/qrcode"
	"heritage/internal/infra/querycache"
	"heritage/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
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
		querycache.New,
		newGateway,
	)
}

// newGateway creates the remote data gateway client and keeps probing
// its health endpoint in the background until the connection is ready.
func newGateway(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) gateway.Gateway {
	client := gatewayhttp.New(cfg, logger)

	probeCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go client.RunProbe(probeCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return client
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMenuService,
			impl.NewReviewService,
			impl.NewProfileService,
			impl.NewAccessService,
			impl.NewReservationService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMenuHandler,
			handler.NewReviewHandler,
			handler.NewReservationHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
			handler.NewSessionHandler,
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
