package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"opms/internal/config"
	"opms/internal/core"
	"opms/internal/db"
	"opms/internal/http/cookie"
	"opms/internal/http/handler"
	"opms/internal/http/handler/middleware"
	"opms/internal/http/payload"
	"opms/internal/http/server"
	"opms/internal/http/view"
	"opms/internal/repository"
	"opms/internal/session"
	"opms/pkg/jwt"
	"opms/pkg/log"
	"opms/pkg/password"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "opms"

// App is the application context: every long lived dependency, built once at
// start and released by Close.
type App struct {
	Config   config.App
	Logger   *zap.SugaredLogger
	DB       *db.GormDB
	Redis    *redis.Client
	Accounts *core.AccountService
	Handler  http.Handler
}

func Start() error {
	cfg, err := config.NewApp()
	if err != nil {
		log.NewZapLogger(serviceName, zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := server.NewHTTP(app.Logger, app.Handler, cfg.Port, cfg.ShutdownTimeout)
	return run(srv)
}

func NewApp(ctx context.Context, cfg config.App) (*App, error) {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)
	if cfg.Debug {
		logger = log.NewDevelopmentLogger(serviceName)
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL, cfg.Debug)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, err
	}

	// repository
	repo := repository.NewAccountRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		_ = dbConn.Close()
		return nil, err
	}

	redisClient, err := session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Errorw("failed to connect to redis", "error", err)
		_ = dbConn.Close()
		return nil, err
	}

	// account service
	accounts := core.NewAccountService(
		logger,
		repo,
		session.NewRedisStore(redisClient, cfg.SessionTTL),
		jwt.NewJWTService([]byte(cfg.SessionSecret)),
		password.NewHasher(cfg.BcryptCost),
		cfg.SessionTTL)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		_ = redisClient.Close()
		_ = dbConn.Close()
		return nil, err
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       dbConn,
		Redis:    redisClient,
		Accounts: accounts,
		Handler:  NewRouter(logger, accounts, renderer, cookie.NewJar(cfg.SecureCookies)),
	}, nil
}

// NewRouter wires the account handler and the middleware chain onto a mux.
func NewRouter(logger *zap.SugaredLogger, accounts *core.AccountService, renderer handler.PageRenderer, jar *cookie.Jar) http.Handler {
	accountHlr := handler.NewAccountHandler(
		logger,
		payload.DecodeValidator{},
		accounts,
		renderer,
		jar)
	auth := middleware.NewAuthMiddleware(logger, accounts, jar)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.LoginPage, accountHlr.HandleLoginPage)
	mux.HandleFunc(handler.Login, accountHlr.HandleLogin)
	mux.HandleFunc(handler.RegisterPage, accountHlr.HandleRegisterPage)
	mux.HandleFunc(handler.Register, accountHlr.HandleRegister)
	mux.HandleFunc(handler.Home, accountHlr.HandleHome)
	mux.HandleFunc(handler.Logout, auth.RequireAuth(accountHlr.HandleLogout))
	mux.HandleFunc(handler.Index, auth.RequireAuth(accountHlr.HandleIndex))
	mux.HandleFunc(handler.Health, accountHlr.HandleHealth)

	// middleware
	var hdlr http.Handler = mux
	hdlr = auth.LoadAccount(hdlr)
	hdlr = middleware.NewSameOriginMiddleware(logger).SameOrigin(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	return hdlr
}

// Close releases the redis client and the database pool.
func (a *App) Close() {
	if err := a.Redis.Close(); err != nil {
		a.Logger.Errorw("failed to close redis client", "error", err)
	}
	if err := a.DB.Close(); err != nil {
		a.Logger.Errorw("failed to close database", "error", err)
	}
	_ = a.Logger.Sync()
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
