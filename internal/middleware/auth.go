// Package middleware provides authentication and request middleware for the application.
package middleware

import (
	"chirp/internal/models"
	"chirp/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// UserLocalKey is the Fiber locals key under which the resolved user is stored.
const UserLocalKey = "user"

// APIKeyAuth resolves the api-key header into a user row and stores it in the
// request locals. An unknown or missing key is rejected with a 404 body of
// {"result": false, ...}, which is the contract callers rely on.
func APIKeyAuth(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("api-key")
		if key == "" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"result": false,
				"error":  "api-key header required",
			})
		}

		user, err := users.GetByAPIKey(c.Context(), key)
		if err != nil {
			if models.IsNotFound(err) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"result": false,
					"error":  "user not found for this api-key",
				})
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}

		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by APIKeyAuth, or nil when the route
// was not guarded by it.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserLocalKey).(*models.User)
	return user
}
