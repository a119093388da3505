package httpapi

import (
	"log/slog"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/Yashshinde43/tinyurl/internal/adapters/httpapi/handlers"
	"github.com/Yashshinde43/tinyurl/internal/adapters/httpapi/middleware"
	"github.com/Yashshinde43/tinyurl/internal/app/links"
)

type RouterDeps struct {
	Links   links.UseCase
	BaseURL string
	Log     *slog.Logger

	SentryEnabled           bool
	SentryMiddlewareTimeout time.Duration
	RequestTimeout          time.Duration
	CORSAllowedOrigins      []string
}

const linksPath = "/links"

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if deps.SentryEnabled {
		r.Use(sentrygin.New(sentrygin.Options{
			Repanic: true,
			Timeout: deps.SentryMiddlewareTimeout,
		}))
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Log))

	if deps.RequestTimeout > 0 {
		r.Use(middleware.RequestTimeout(deps.RequestTimeout))
	}

	r.Use(middleware.CORS(deps.CORSAllowedOrigins))

	h := handlers.New(deps.Links, deps.BaseURL)

	r.NoRoute(h.NotFound)

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET(linksPath, h.ListLinks)
		api.POST(linksPath, h.CreateLink)
		api.GET(linksPath+"/:code", h.GetLink)
		api.DELETE(linksPath+"/:code", h.DeleteLink)
	}

	// Must come after the static routes; gin gives them priority.
	r.GET("/:code", h.Redirect)

	return r
}
