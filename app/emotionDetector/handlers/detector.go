package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superfeelapi/goEmotionDetector/business/emotion"
	"go.uber.org/zap"
)

const textParam = "textToAnalyze"

type Handlers struct {
	log       *zap.SugaredLogger
	analyzer  Analyzer
	publisher Publisher
	build     string
}

// Event is what the publisher receives after a successful analysis.
type Event struct {
	RequestID string `json:"request_id"`
	emotion.Record
}

func (h Handlers) emotionDetector(c *gin.Context) {
	text := c.Query(textParam)
	if text == "" && c.Request.Method == http.MethodPost {
		text = c.PostForm(textParam)
	}

	if rejection, ok := checkText(text); !ok {
		h.log.Infow("emotionDetector: rejected", "request_id", c.GetString(requestIDHeader), "reason", rejection)
		respond(c, http.StatusBadRequest, rejection)
		return
	}

	r := h.analyzer.Analyze(c.Request.Context(), text)

	s, ok := r.(emotion.Success)
	if !ok {
		respond(c, http.StatusBadRequest, msgInvalidText)
		return
	}

	h.publish(c, s)
	respond(c, http.StatusOK, formatResponse(s))
}

func (h Handlers) publish(c *gin.Context, s emotion.Success) {
	if h.publisher == nil {
		return
	}

	ev := Event{
		RequestID: c.GetString(requestIDHeader),
		Record:    emotion.ToRecord(s),
	}
	if err := h.publisher.Produce(c.Request.Context(), ev); err != nil {
		h.log.Errorw("emotionDetector: publish", "request_id", ev.RequestID, "ERROR", err)
	}
}

func (h Handlers) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Build": h.build,
	})
}

func (h Handlers) readiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"build":  h.build,
	})
}

func respond(c *gin.Context, status int, body string) {
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}
