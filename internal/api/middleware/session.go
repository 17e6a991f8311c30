package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

// Session validates the gateway token, loads the server-side session and
// injects it into context. It also stores the session's upstream token in
// the request context so the upstream client authenticates every call this
// request triggers.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess, err := sessions.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set("session", sess)
			ctx := ports.WithUpstreamToken(c.Request().Context(), sess.UpstreamToken)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
