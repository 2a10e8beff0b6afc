package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/molog/internal/http/export"
	"github.com/MrJamesThe3rd/molog/internal/http/importcsv"
	"github.com/MrJamesThe3rd/molog/internal/http/layout"
	"github.com/MrJamesThe3rd/molog/internal/http/ledger"
	"github.com/MrJamesThe3rd/molog/internal/http/transaction"
)

type Options struct {
	CORSOrigins []string
	// JWTSecret turns on bearer authentication for /api/v1 when not empty.
	JWTSecret string
}

func New(
	opts Options,
	transactionsV1 *transaction.Handler,
	ledgerV1 *ledger.Handler,
	layoutV1 *layout.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Entry-Count"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		if opts.JWTSecret != "" {
			r.Use(RequireJWT([]byte(opts.JWTSecret)))
		}

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/ledger", ledgerV1.Routes)

		r.Route("/layout", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			layoutV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
		r.Route("/export", exportV1.Routes)
	})

	return router
}
