package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents error response. Field names the offending input
// when the error is a validation failure.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// currentUserID reads the id placed in the context by the auth middleware
func currentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error: "unauthorized",
	})
}

// bindError turns a binding failure into a 400, naming the field when the
// body had a value of the wrong type or failed a binding rule.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "failed " + verrs[0].Tag() + " validation",
			Field: verrs[0].Field(),
		})
		return
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid value type",
			Field: typeErr.Field,
		})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "invalid request body",
	})
}

// domainError maps known domain errors to responses. Anything else is
// reported as a 500 with the given fallback message.
func domainError(c *gin.Context, err error, fallback string) {
	var ice *domain.InvalidCriteriaError
	switch {
	case errors.As(err, &ice):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ice.Reason, Field: ice.Field})
	case errors.Is(err, domain.ErrUnknownRequester):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "requester profile not found"})
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
	case errors.Is(err, domain.ErrProfileAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "profile already exists"})
	case errors.Is(err, domain.ErrSelfMatch):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCannotMessageSelf):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "receiverId"})
	case errors.Is(err, domain.ErrEmptyMessage), errors.Is(err, domain.ErrMessageTooLong):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "content"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
