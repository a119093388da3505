package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yashshinde43/tinyurl/internal/adapters/httpapi/dto"
)

type CreateLinkRequest struct {
	TargetURL string `json:"target_url" validate:"required" example:"https://example.com"`
	Code      string `json:"code" validate:"omitempty,alphanum,min=6,max=8" example:"spring24"`
}

type DeleteLinkResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) ListLinks(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	items, err := h.svc.List(c.Request.Context(), search)
	if err != nil {
		h.fail(c, err)

		return
	}

	resp := make([]dto.LinkResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.FromDomain(it, h.baseURL))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateLink(c *gin.Context) {
	var req CreateLinkRequest

	if err := bindJSONStrict(c, &req); err != nil {
		badJSON(c)

		return
	}

	req.TargetURL = strings.TrimSpace(req.TargetURL)
	req.Code = strings.TrimSpace(req.Code)

	if errs, ok := validateStruct(req); ok {
		writeValidationErrors(c, errs)

		return
	}

	link, err := h.svc.Create(c.Request.Context(), req.TargetURL, req.Code)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.Header("Location", fmt.Sprintf("/api/links/%s", link.Code))
	c.JSON(http.StatusCreated, dto.FromDomain(link, h.baseURL))
}

func (h *Handler) GetLink(c *gin.Context) {
	link, err := h.svc.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.FromDomain(link, h.baseURL))
}

func (h *Handler) DeleteLink(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("code")); err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, DeleteLinkResponse{Success: true})
}
