package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"whisper/config"
	"whisper/internal/delivery"
	"whisper/internal/delivery/web"
	webmiddleware "whisper/internal/delivery/web/middleware"
	"whisper/internal/delivery/web/router/handler"
	"whisper/internal/delivery/web/session"
	"whisper/internal/domain/repository"
	"whisper/internal/infra/auth"
	"whisper/internal/infra/auth/google"
	logs "whisper/internal/infra/log"
	"whisper/internal/infra/persistence/memory"
	"whisper/internal/infra/persistence/postgres"
	"whisper/internal/infra/persistence/redis"
	"whisper/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// storeParams carries what the store constructors need to open connections.
type storeParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

func main() {
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newUserRepository,
			newSessionRepository,
		),
	)
}

// newUserRepository opens the store selected by storage.driver.
func newUserRepository(params storeParams) (repository.UserRepository, error) {
	if params.Config.Storage.Driver == config.StorageDriverMemory {
		params.Logger.Warn("Using in-memory user store; accounts are lost on restart")

		return memory.NewUserRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewUserRepository(db), nil
}

// newSessionRepository opens the store selected by session.store.
func newSessionRepository(params storeParams) (repository.SessionRepository, error) {
	if params.Config.Session.Store == config.SessionStoreMemory {
		params.Logger.Warn("Using in-memory session store; sessions are lost on restart")

		return memory.NewSessionRepository(), nil
	}

	client, err := redis.New(redis.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return redis.NewSessionRepository(client, params.Config), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			google.NewProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewSecretService,
			impl.NewLocalAuthenticator,
			impl.NewDelegatedAuthenticator,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewManager,
			webmiddleware.NewSessionMiddleware,
			webmiddleware.NewGuardMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHomeHandler,
			handler.NewAuthHandler,
			handler.NewSecretHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				web.NewServer,
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
