package main

import (
	"context"
	"log/slog"
	"os"

	"vitrine/config"
	"vitrine/internal/delivery"
	"vitrine/internal/delivery/http"
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/delivery/http/router/handler"
	"vitrine/internal/infra/auth"
	logs "vitrine/internal/infra/log"
	"vitrine/internal/infra/notify"
	"vitrine/internal/infra/persistence/postgres"
	"vitrine/internal/infra/storage"
	"vitrine/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
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
		postgres.New,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewHeroImageRepository,
			postgres.NewServiceRepository,
			postgres.NewProjectRepository,
			postgres.NewTeamMemberRepository,
			postgres.NewTestimonialRepository,
			postgres.NewAdminRepository,
			postgres.NewSessionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newLoginThrottle,
			notify.NewResetLinkLogger,
		),
	)
}

// newLoginThrottle builds the in-memory login throttle from config, falling
// back to the package defaults when unset.
func newLoginThrottle(cfg *config.Config) *auth.LoginThrottle {
	maxAttempts := cfg.Auth.MaxLoginAttempts
	if maxAttempts <= 0 {
		maxAttempts = auth.DefaultMaxAttempts
	}

	cooldown := cfg.Auth.LoginCooldown
	if cooldown <= 0 {
		cooldown = auth.DefaultCooldown
	}

	return auth.NewLoginThrottle(maxAttempts, cooldown)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHeroService,
			impl.NewCatalogService,
			impl.NewProjectService,
			impl.NewTeamService,
			impl.NewTestimonialService,
			impl.NewAuthService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHeroHandler,
			handler.NewServiceHandler,
			handler.NewProjectHandler,
			handler.NewTeamHandler,
			handler.NewTestimonialHandler,
			handler.NewUploadHandler,
			handler.NewAuthHandler,
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
