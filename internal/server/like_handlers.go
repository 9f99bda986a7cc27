package server

import (
	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST and DELETE /api/tweets/:id/likes. Both verbs run
// the same toggle; which way it goes depends only on whether the like row
// already exists.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	tweetID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeRepo.Toggle(c.Context(), user.ID, tweetID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"result": true})
}
