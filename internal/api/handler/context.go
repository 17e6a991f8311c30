package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing mistake, answered with 401 rather than a panic.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, ok := c.Get("session").(*domain.Session)
	if !ok || sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
