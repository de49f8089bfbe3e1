package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

// respondError writes the status mapped from err. Server errors are logged
// and reported without detail.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	code, message := statusFromError(err)
	if code >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	c.AbortWithStatusJSON(code, Response{
		Status:  statusError,
		Message: message,
	})
}

var clientErrors = []struct {
	err  error
	code int
}{
	{domain.ErrInvalidQuantity, http.StatusBadRequest},
	{domain.ErrCurrencyMismatch, http.StatusBadRequest},
	{domain.ErrInvalidPrice, http.StatusBadRequest},
	{domain.ErrInsufficientStock, http.StatusUnprocessableEntity},
	{checkout.ErrUnsupportedPaymentMethod, http.StatusBadRequest},
	{domain.ErrEmptyCart, http.StatusUnprocessableEntity},
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrNotFound, http.StatusNotFound},
	{checkout.ErrCheckoutInProgress, http.StatusConflict},
}

func statusFromError(err error) (int, string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity, verr.Error()
	}

	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			return ce.code, ce.err.Error()
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "request timed out"
	}

	return http.StatusInternalServerError, "internal error"
}
