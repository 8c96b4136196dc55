package web

import (
	"context"
	"net/http"
	"time"

	"github.com/awakentax/crypto-tax-go/pkg/log"
)

// Start blocks until the server is closed.
func Start(server *http.Server) {
	log.Infow("starting the demo http server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		// cannot panic, because this probably is an intentional close
		log.Infow("shutting down the http server", "message", err.Error())
	}
}

func Shutdown(server *http.Server, shutdownTimeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("failed to shutdown the http server", "error", err.Error())
		return err
	}
	log.Info("http server stopped")
	return nil
}
