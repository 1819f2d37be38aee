package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/transport/api/middlewares"
)

func getUserIDFromContext(c *gin.Context) int64 {
	id, _ := c.Get(middlewares.CurrentUserIDKey)
	userID, _ := id.(int64)
	return userID
}

func getIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid id parameter")).
			SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

func getPagination(c *gin.Context) (uint, uint) {
	limit, limitErr := strconv.ParseUint(c.DefaultQuery("limit", "50"), 10, 32)
	if limitErr != nil || limit == 0 || limit > 200 {
		limit = 50
	}
	offset, offsetErr := strconv.ParseUint(c.DefaultQuery("offset", "0"), 10, 32)
	if offsetErr != nil {
		offset = 0
	}
	return uint(limit), uint(offset)
}

// abortWithServiceError транслирует доменные ошибки в http статусы.
// Ошибки валидации и недостатка средств уходят клиенту как есть, все
// остальное скрывается за типовым текстом статуса.
func abortWithServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var fundsErr *domain.InsufficientFundsError
	switch {
	case errors.As(err, &validationErr):
		_ = c.AbortWithError(http.StatusBadRequest, errors.New(validationErr.Message)).
			SetType(gin.ErrorTypePublic)
	case errors.As(err, &fundsErr):
		_ = c.AbortWithError(http.StatusBadRequest, fundsErr).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).
			SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, err).
			SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
	}
}
