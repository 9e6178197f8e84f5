package handler

import (
	"net/http"
	"strconv"

	"github.com/gdugdh24/roommate-backend/internal/matching"
	"github.com/gdugdh24/roommate-backend/internal/usecase/search"
	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUseCase *search.SearchUseCase
}

func NewSearchHandler(searchUseCase *search.SearchUseCase) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
	}
}

// Search handles POST /roommates/search
// @Summary Search roommates
// @Description Filter, score and rank candidate roommates for the caller
// @Tags roommates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body matching.SearchInput false "Search criteria"
// @Success 200 {object} search.SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /roommates/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var in matching.SearchInput
	// An empty body is a search with no criteria.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			bindError(c, err)
			return
		}
	}

	resp, err := h.searchUseCase.Search(c.Request.Context(), userID, &in)
	if err != nil {
		domainError(c, err, "search failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Compatibility handles GET /roommates/:id/compatibility
// @Summary Compatibility breakdown
// @Description Score one candidate against the caller, line by line
// @Tags roommates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Candidate profile ID"
// @Success 200 {object} search.CompatibilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /roommates/{id}/compatibility [get]
func (h *SearchHandler) Compatibility(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	candidateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid id",
			Field: "id",
		})
		return
	}

	resp, err := h.searchUseCase.Compatibility(c.Request.Context(), userID, candidateID)
	if err != nil {
		domainError(c, err, "failed to compute compatibility")
		return
	}

	c.JSON(http.StatusOK, resp)
}
