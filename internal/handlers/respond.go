package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/services"
)

var statusByType = map[apperrors.ErrorType]int{
	apperrors.ErrTypeNotFound:     http.StatusNotFound,
	apperrors.ErrTypeInvalidInput: http.StatusBadRequest,
	apperrors.ErrTypeUnauthorized: http.StatusUnauthorized,
	apperrors.ErrTypeRateLimit:    http.StatusTooManyRequests,
	apperrors.ErrTypeUnavailable:  http.StatusServiceUnavailable,
	apperrors.ErrTypeInternal:     http.StatusInternalServerError,
}

// respondError maps err onto a status code by its DomainError type.
func respondError(c *gin.Context, err error) {
	errType := apperrors.TypeOf(err)
	status, ok := statusByType[errType]
	if !ok {
		status = http.StatusInternalServerError
	}
	_ = c.Error(err)

	body := gin.H{"error": err.Error(), "type": errType}
	var de *apperrors.DomainError
	if errors.As(err, &de) {
		body["error"] = de.Message
		// Only validation causes reach the caller.
		if de.Type == apperrors.ErrTypeInvalidInput && de.Err != nil {
			body["details"] = de.Err.Error()
		}
	}
	c.JSON(status, body)
}

// bindJSON decodes the body into req and answers 400 when it does not fit.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apperrors.InvalidInput("Invalid JSON format: "+err.Error(), err))
		return false
	}
	return true
}

type outcomeResponse struct {
	services.Outcome
	Data any `json:"data,omitempty"`
}

// respondOutcome writes a command outcome. A done command answers with
// doneStatus, a pending confirmation with 202 and a refusal with 422.
func respondOutcome(c *gin.Context, doneStatus int, out services.Outcome, data any) {
	status := doneStatus
	switch out.Kind {
	case services.OutcomeConfirm:
		status = http.StatusAccepted
	case services.OutcomeDenied:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, outcomeResponse{Outcome: out, Data: data})
}

func confirmed(c *gin.Context) bool {
	ok, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && ok
}
