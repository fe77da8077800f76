package middleware

import (
	"net/http"
	"os"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/user"
	"github.com/golang-jwt/jwt/v5"
)

func SetupJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.JwtCustomClaims)
		},
	})
}

// RequireAdmin gates a route group on the admin claim. Must run after the
// JWT middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := Claims(c)
		if claims == nil || !claims.Admin {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}

// Claims extracts the custom claims the JWT middleware stored on the
// context. Returns nil on unauthenticated routes.
func Claims(c echo.Context) *user.JwtCustomClaims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*user.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}
