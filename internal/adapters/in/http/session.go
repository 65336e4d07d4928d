package http

import (
	"net/http"
	"strings"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/generated/servers"
	"loadboard/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// sessionContextKey is the echo context key the auth middleware stores the
// session under.
const sessionContextKey = "loadboard.session"

// publicPaths are served without a bearer token.
var publicPaths = map[string]bool{
	"/health":       true,
	"/auth/signup":  true,
	"/auth/signin":  true,
	"/openapi.json": true,
	"/swagger/*":    true,
}

// Session is the authenticated caller, reconstructed from the bearer token on
// every request.
type Session struct {
	UserID kernel.UUID
	Role   profile.Role
}

// NewAuthMiddleware returns an echo middleware that parses the Authorization
// bearer token and stores the resulting Session in the request context.
// Requests to public paths pass through untouched.
func NewAuthMiddleware(signer *token.Signer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if publicPaths[ctx.Path()] {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims, err := signer.Parse(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			userID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			role, err := profile.ParseRole(claims.Role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(sessionContextKey, Session{UserID: userID, Role: role})
			return next(ctx)
		}
	}
}

// sessionFromContext returns the Session the auth middleware stored, if any.
func sessionFromContext(ctx echo.Context) (Session, bool) {
	session, ok := ctx.Get(sessionContextKey).(Session)
	return session, ok
}
