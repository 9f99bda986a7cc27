package server

import (
	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTweet handles POST /api/tweets
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req struct {
		TweetData string `json:"tweet_data"`
		// The request may carry several media ids, but the schema stores a
		// single reference; only the first id is kept.
		TweetMediaIDs []uint `json:"tweet_media_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// An empty tweet body is permitted.
	tweet := &models.Tweet{
		TweetData: req.TweetData,
		APIKey:    user.APIKey,
	}
	if len(req.TweetMediaIDs) > 0 {
		mediaID := req.TweetMediaIDs[0]
		tweet.TweetMediaIDs = &mediaID
	}

	if err := s.tweetRepo.Create(c.Context(), tweet); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"result":   true,
		"tweet_id": tweet.TweetID,
	})
}

// GetFeed handles GET /api/tweets
func (s *Server) GetFeed(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	tweets, err := s.tweetRepo.GetFeed(c.Context(), user.ID)
	if err != nil {
		// Never a partial feed: any underlying read failure is generic.
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"result": true,
		"tweets": tweets,
	})
}

// DeleteTweet handles DELETE /api/tweets/:id. Any caller may delete any
// tweet; there is deliberately no authorship check.
func (s *Server) DeleteTweet(c *fiber.Ctx) error {
	tweetID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tweetRepo.Delete(c.Context(), tweetID); err != nil {
		if models.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"result": false})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"result": true})
}
