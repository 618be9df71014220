package handlers

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/trunghoangnt2003/memory/internal/geocode"
	"github.com/trunghoangnt2003/memory/internal/logger"
	"github.com/trunghoangnt2003/memory/internal/response"
)

type LocationHandler struct {
	searcher geocode.Searcher
}

func NewLocationHandler(searcher geocode.Searcher) *LocationHandler {
	return &LocationHandler{searcher: searcher}
}

// SearchLocations handles GET /api/locations/search?q=
// Queries under the minimum length return an empty candidate list without
// hitting the geocoding endpoint; debouncing happens client side.
func (h *LocationHandler) SearchLocations(c *gin.Context) {
	query := c.Query("q")

	if utf8.RuneCountInString(query) < geocode.MinQueryLength {
		response.SuccessResponse(c, http.StatusOK, "", []geocode.Result{})
		return
	}

	results, err := h.searcher.Search(c.Request.Context(), query)
	if err != nil {
		logger.Handler("location").Warn("Location search failed", "query", query, "error", err)
		response.BadGatewayError(c, "Location search failed")
		return
	}

	if results == nil {
		results = []geocode.Result{}
	}
	response.SuccessResponse(c, http.StatusOK, "", results)
}
