// @title         pass-service API
// @version       1.0
// @description   Сервис генерации и подписи Apple Wallet пассов (.pkpass).
// @schemes       http
// @host          localhost:3000
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/needsomevibe/passcard/pass-service/docs"
	icfg "github.com/needsomevibe/passcard/pass-service/internal/config"
	icrypto "github.com/needsomevibe/passcard/pass-service/internal/crypto"
	ih "github.com/needsomevibe/passcard/pass-service/internal/http"
	"github.com/needsomevibe/passcard/pass-service/internal/logging"
	"github.com/needsomevibe/passcard/pass-service/internal/pass"
	"github.com/needsomevibe/passcard/pass-service/internal/repo"
	issvc "github.com/needsomevibe/passcard/pass-service/internal/service"
)

func main() {
	log := logging.InitLogger()
	defer func() { _ = log.Sync() }()

	cfg := icfg.Load()
	log.Info("config loaded",
		zap.String("bind", cfg.Bind),
		zap.String("passTypeId", cfg.PassTypeIdentifier),
		zap.Bool("swagger", cfg.EnableSwagger))

	// связка сертификатов обязана загрузиться до первого запроса
	bundle, err := icrypto.LoadBundle(cfg.CertsDir, cfg.KeyPassword)
	if err != nil {
		log.Fatal("certificates", zap.Error(err))
	}

	store, err := repo.NewStore(cfg.GeneratedDir)
	if err != nil {
		log.Fatal("store", zap.Error(err))
	}

	svc := issvc.New(store, icrypto.NewCMSSigner(bundle), issvc.RealClock{}, issvc.RandTokens{}, pass.Config{
		PassTypeIdentifier: cfg.PassTypeIdentifier,
		TeamIdentifier:     cfg.TeamIdentifier,
		OrganizationName:   cfg.OrganizationName,
		WebServiceURL:      cfg.WebServiceURL,
	}, log)

	e := ih.Router(svc, cfg, log)

	srv := &http.Server{
		Addr:              cfg.Bind,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("pass-service listening", zap.String("addr", cfg.Bind))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
