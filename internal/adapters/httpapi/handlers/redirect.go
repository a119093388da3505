package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// reservedCodes are route names that can never resolve as short codes.
// They 404 at the boundary without touching the store.
var reservedCodes = map[string]struct{}{
	"api":     {},
	"code":    {},
	"healthz": {},
}

func (h *Handler) Redirect(c *gin.Context) {
	code := c.Param("code")

	if _, reserved := reservedCodes[code]; reserved {
		h.NotFound(c)

		return
	}

	url, err := h.svc.Resolve(c.Request.Context(), code)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.Redirect(http.StatusFound, url)
}
