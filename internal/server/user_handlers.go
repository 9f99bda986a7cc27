package server

import (
	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	profile, err := s.userRepo.GetProfile(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	// Only the owner sees their own api key.
	profile.APIKey = user.APIKey

	return c.JSON(fiber.Map{
		"result": true,
		"user":   profile,
	})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userRepo.GetProfile(c.Context(), userID)
	if err != nil {
		if models.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"result":  false,
				"message": "User not found",
			})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"result": true,
		"user":   profile,
	})
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	targetID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followerRepo.Follow(c.Context(), user.ID, targetID); err != nil {
		// Duplicate follows and storage failures alike map onto the
		// caller's {"result": false} not-found contract.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"result": false})
	}

	return c.JSON(fiber.Map{"result": true})
}

// UnfollowUser handles DELETE /api/users/:id/follow. Unfollowing someone the
// user never followed still succeeds.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	targetID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followerRepo.Unfollow(c.Context(), user.ID, targetID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"result": false})
	}

	return c.JSON(fiber.Map{"result": true})
}
