package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/middleware"
	"github.com/lshigami/quizdesk/internal/quiz"
	"github.com/lshigami/quizdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// ParseIDParam reads a positive numeric path parameter. On failure it writes
// a 400 response and returns false.
func ParseIDParam(ctx *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + label + " ID format"})
		return 0, false
	}
	return uint(id), true
}

// ParseOptionalIDQuery reads an optional numeric query parameter. A missing
// parameter yields nil.
func ParseOptionalIDQuery(ctx *gin.Context, name string) (*uint, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format in query"})
		return nil, false
	}
	id := uint(val)
	return &id, true
}

// BindJSON binds the request body, answering 400 on failure.
func BindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return false
	}
	return true
}

// RespondError maps service errors to HTTP status codes. Unexpected errors
// are logged and reported without internal details.
func RespondError(ctx *gin.Context, err error, action string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(ctx)).Msg(action)
		ctx.JSON(status, dto.ErrorResponse{Message: action})
		return
	}
	log.Debug().Err(err).Int("status", status).Msg(action)
	ctx.JSON(status, dto.ErrorResponse{Message: action, Details: []string{err.Error()}})
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, quiz.ErrUnknownQuestion), errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
