package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"campusfound/internal/domain/repository"
	"campusfound/internal/usecase"
)

// AuthMiddleware resolves a Bearer identity token into a stored user record.
// The verified email from the token is authoritative; nothing is trusted from
// plain request headers.
type AuthMiddleware struct {
	verifier usecase.TokenVerifier
	userRepo repository.UserRepository
}

func NewAuthMiddleware(verifier usecase.TokenVerifier, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		userRepo: userRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		email, _, _, err := m.verifier.Verify(c.Request().Context(), parts[1])
		if err != nil || email == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		user, err := m.userRepo.GetByEmail(c.Request().Context(), email)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		}

		c.Set("user", user)
		c.Set("email", user.Email)

		return next(c)
	}
}
