package server

import (
	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia handles POST /api/medias. The file bytes are persisted first;
// the media row only records where they ended up.
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	file, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("file is required"))
	}

	path, err := s.uploads.Save(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	media := &models.Media{FilePath: path, APIKey: user.APIKey}
	if err := s.mediaRepo.Create(c.Context(), media); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"result":   true,
		"media_id": media.ID,
	})
}
