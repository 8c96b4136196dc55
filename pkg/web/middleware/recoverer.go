package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/awakentax/crypto-tax-go/pkg/log"
	"github.com/awakentax/crypto-tax-go/pkg/response"
	"github.com/awakentax/crypto-tax-go/pkg/web"
)

var (
	errInternal = response.NewError(
		http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError),
	).WithStatus(http.StatusInternalServerError)
)

func Recoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log.Errorw("recovered from a panic", "panic", rvr, "stack", string(debug.Stack()))
				web.RenderError(w, r, errInternal)
			}
		}()

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
