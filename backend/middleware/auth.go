package middleware

import (
	"tracker/backend/config"
	"tracker/backend/models"
	"tracker/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware rejects requests without a valid session token and stores
// the user ID in the request context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}

// AdminMiddleware requires an authenticated user whose account carries the
// admin flag. Authentication is resolved first, so an anonymous caller gets a
// clean 401 rather than a fault; the flag itself is read from the store.
func AdminMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		if !user.IsAdmin {
			return utils.Forbidden(c, "Admin access required")
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}
