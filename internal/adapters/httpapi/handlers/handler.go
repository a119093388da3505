package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yashshinde43/tinyurl/internal/app/links"
)

type Handler struct {
	svc     links.UseCase
	baseURL string
	started time.Time
}

func New(svc links.UseCase, baseURL string) *Handler {
	return &Handler{svc: svc, baseURL: baseURL, started: time.Now()}
}

func (h *Handler) fail(c *gin.Context, err error) {
	writeProblem(c, problemFromError(err))
}

func (h *Handler) NotFound(c *gin.Context) {
	writeProblem(c, Problem{
		Type:   problemTypeNotFound,
		Title:  "Not Found",
		Status: http.StatusNotFound,
	})
}
