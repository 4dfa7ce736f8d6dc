package auth

import (
	"github.com/feetrack/api/model"
	"github.com/feetrack/api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProfileResponse is the profile joined with its user's identity fields,
// shaped the way clients render a student card.
type ProfileResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	YearLevel string `json:"year_level"`
	Course    string `json:"course"`
}

// GetProfile handles GET /api/v1/profiles/:user_id
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	var profile model.Profile
	if err := h.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Profile not found")
		}
		return response.InternalServerError(c, "Failed to fetch profile")
	}

	return response.Success(c, ProfileResponse{
		ID:        profile.ID,
		UserID:    profile.UserID,
		Username:  profile.User.Username,
		Email:     profile.User.Email,
		FirstName: profile.User.FirstName,
		LastName:  profile.User.LastName,
		YearLevel: profile.YearLevel,
		Course:    profile.Course,
	})
}

// UpdateProfile handles PUT /api/v1/profiles/:user_id, self or staff only
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	requester, ok := c.Locals("user").(*model.User)
	if !ok || requester == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var profile model.Profile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Profile not found")
		}
		return response.InternalServerError(c, "Failed to fetch profile")
	}

	if requester.ID != profile.UserID && !requester.IsStaff() {
		return response.Forbidden(c, "You don't have permission to update this profile")
	}

	var req struct {
		YearLevel *string `json:"year_level"`
		Course    *string `json:"course"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.YearLevel != nil {
		profile.YearLevel = *req.YearLevel
	}
	if req.Course != nil {
		if *req.Course == "" {
			return response.BadRequest(c, "Course cannot be empty")
		}
		profile.Course = *req.Course
	}

	if err := h.db.Save(&profile).Error; err != nil {
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Success(c, profile)
}
