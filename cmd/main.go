package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/awakentax/crypto-tax-go/app/config"
	"github.com/awakentax/crypto-tax-go/app/linkform"
	"github.com/awakentax/crypto-tax-go/app/server"
	"github.com/awakentax/crypto-tax-go/pkg/log"
	"github.com/awakentax/crypto-tax-go/pkg/web"
	webware "github.com/awakentax/crypto-tax-go/pkg/web/middleware"
)

const (
	maxRequestsAllowed    = 100
	serverShutdownTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		panic(err)
	}

	zlog := log.ConfigureLogger(cfg.Logging)
	defer func() {
		_ = zlog.Sync() // flush the logger
	}()

	linkFormSvc := &linkform.Manager{
		Config: cfg.LinkAPI,
		HttpClient: &http.Client{
			Timeout: cfg.LinkAPI.Timeout,
		},
	}

	router := newRouter()
	rest := server.Rest{
		Router:   router,
		LinkForm: linkFormSvc,
	}
	rest.Route() // handle http requests

	srv := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go web.Start(srv)
	log.Infow("link api", "baseUrl", cfg.LinkAPI.BaseURL)

	// wait for the program exit
	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
	<-exit

	_ = web.Shutdown(srv, serverShutdownTimeout)
}

func newRouter() chi.Router {
	router := chi.NewRouter()

	// add middleware
	router.Use(
		middleware.Throttle(maxRequestsAllowed),
		middleware.RealIP,
		webware.ZapLogger,
		webware.Recoverer,
	)

	return router
}
