package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/papakado/store/internal/config"
	"github.com/papakado/store/internal/mailer"
	"github.com/papakado/store/internal/model"
	"github.com/papakado/store/internal/repository/pg"
	"github.com/papakado/store/internal/sberbank"
	"github.com/papakado/store/internal/sbis"
	"github.com/papakado/store/internal/service"
	"github.com/papakado/store/pgk/auth"
	"github.com/papakado/store/pgk/logger"
	"go.uber.org/zap"

	httpController "github.com/papakado/store/internal/controller/http"
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	storage, err := pg.New(cfg.DatabaseURI, lg)
	if err != nil {
		return err
	}

	sbisClient := sbis.New(sbis.Config{
		AuthURL:      cfg.SbisAuthURL,
		APIURL:       cfg.SbisAPIURL,
		AppID:        cfg.SbisAppID,
		ProtectedKey: cfg.SbisProtectedKey,
		ServiceKey:   cfg.SbisServiceKey,
		PriceListID:  cfg.SbisPriceListID,
		City:         cfg.SbisCity,
		ShopURL:      cfg.AppURL,
	}, lg)

	sberClient := sberbank.New(sberbank.Config{
		APIURL:   cfg.SberAPIURL,
		UserName: cfg.SberAPIName,
		Password: cfg.SberAPIPassword,
	})

	mail := mailer.New(mailer.Config{
		Host:          cfg.MailHost,
		Port:          cfg.MailPort,
		Username:      cfg.MailUsername,
		Password:      cfg.MailPassword,
		From:          cfg.MailFrom,
		OperatorEmail: cfg.OperatorEmail,
	})

	s := service.New(storage, sbisClient, sberClient, mail, lg, service.Options{
		AppURL:      cfg.AppURL,
		Debug:       cfg.AppDebug,
		TokenSecret: cfg.SecretKey,
		TokenExp:    cfg.TokenLifetime,
	})

	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(httpController.MetricsMiddleware)
	router.Use(middleware.Recoverer)

	handlers := httpController.New(s, lg)
	adminAuth := auth.AuthBearerMiddlewareInit[model.TokenInfo](cfg.SecretKey)
	router = httpController.InitRoutes(router, handlers, adminAuth)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
