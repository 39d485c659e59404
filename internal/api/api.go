package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"donation-service/internal/entity"
)

// storeTimeout bounds every store operation issued from a handler.
const storeTimeout = 30 * time.Second

func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), storeTimeout)
}

// httpError maps the shared error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a store failure and stays opaque to the client.
func httpError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
	case errors.Is(err, entity.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, entity.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, map[string]string{"error": "already exists"})
	case errors.Is(err, entity.ErrStoreTimeout):
		return c.JSON(http.StatusGatewayTimeout, map[string]string{"error": "store timeout"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
