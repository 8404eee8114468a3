package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/catalog-service/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/catalog-service/internal/cfg"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
	cfg    *cfg.Config
	store  sessions.Store
}

func NewRouter(router *chi.Mux, logger logger.Logger, cfg *cfg.Config, store sessions.Store) *Router {
	return &Router{router: router, logger: logger, cfg: cfg, store: store}
}

func (r *Router) Init(catalogUC usecase.CatalogUC) error {
	pages, err := newPageRenderer(r.logger)
	if err != nil {
		return err
	}

	nav := NewPathNavigator(r.cfg.Catalog.AdminBasePath)
	catalogHandler := NewCatalogHandler(
		catalogUC,
		r.logger,
		nav,
		r.store,
		pages,
		r.cfg.Catalog.ReadTimeout,
		r.cfg.Catalog.ArchiveTimeout,
	)

	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(requestLogger(r.logger))
	r.router.Use(middleware.Recoverer)
	r.router.Use(ActorRole(r.cfg.Auth.JWTSecret, r.cfg.Auth.RoleClaim, r.logger))

	r.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(r.cfg.Http.SwaggerURL), // ссылка на JSON
	))

	r.router.Route(nav.ListURL(), func(admin chi.Router) {
		registerCatalogPages(admin, catalogHandler)
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.cfg.Http.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		registerCatalogRoutes(v1, catalogHandler)
	})

	return nil
}

func registerCatalogPages(router chi.Router, h *CatalogHandler) {
	router.Get("/", h.listPage)
	router.Route("/{id}", func(item chi.Router) {
		item.Get("/", h.detailPage)
		item.Get("/archive", h.confirmPage)
		item.Post("/archive", h.archive)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/catalog", func(c chi.Router) {
		c.Get("/", h.getCatalog)
		c.Get("/{id}", h.getItem)
		c.Post("/{id}/archive", h.archiveItem)
	})
}

// requestLogger пишет строку на каждый запрос через общий логгер.
func requestLogger(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Infof("%s %s %d %dB %s [%s]",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start), middleware.GetReqID(r.Context()))
		})
	}
}
