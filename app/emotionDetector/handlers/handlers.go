// Package handlers wires the HTTP routes of the emotion detector.
package handlers

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/superfeelapi/goEmotionDetector/business/emotion"
	"go.uber.org/zap"
)

//go:embed assets
var assets embed.FS

const requestIDHeader = "X-Request-ID"

// Analyzer produces one Result per text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) emotion.Result
}

// Publisher receives successful analyses. Optional.
type Publisher interface {
	Produce(ctx context.Context, data any) error
}

type APIConfig struct {
	Log       *zap.SugaredLogger
	Analyzer  Analyzer
	Publisher Publisher
	Build     string
}

// API constructs the router. Every dependency arrives through cfg.
func API(cfg APIConfig) (http.Handler, error) {
	tmpl, err := template.ParseFS(assets, "assets/templates/*.html")
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(assets, "assets/static")
	if err != nil {
		return nil, err
	}

	h := Handlers{
		log:       cfg.Log,
		analyzer:  cfg.Analyzer,
		publisher: cfg.Publisher,
		build:     cfg.Build,
	}

	router := gin.New()
	router.Use(logRequest(cfg.Log), gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	router.GET("/", h.index)
	router.GET("/readiness", h.readiness)
	router.Match([]string{http.MethodGet, http.MethodPost}, "/emotionDetector", h.emotionDetector)
	router.StaticFS("/static", http.FS(static))

	return router, nil
}

// logRequest tags the request with an ID and logs it once it completes.
func logRequest(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := uuid.NewString()
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)

		c.Next()

		log.Infow("request completed",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
