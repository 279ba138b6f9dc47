package controllers

import (
	"strings"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// GetProfile returns the logged in customer's profile.
func GetProfile(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	utils.Success(c, "Profile retrieved successfully", gin.H{
		"user": gin.H{
			"id":            user.ID,
			"username":      user.Username,
			"email":         user.Email,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"phone":         user.Phone,
			"profile_image": user.ProfileImage,
			"is_verified":   user.IsVerified,
			"member_since":  user.CreatedAt.Format("2006-01-02"),
		},
	})
}

// UpdateProfileRequest represents the profile update body
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UpdateProfile edits name and phone on the customer's profile.
func UpdateProfile(c *gin.Context) {
	utils.LogInfo("UpdateProfile called")

	user := c.MustGet("user").(models.User)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.FirstName); name != "" {
		if ok, msg := utils.ValidateName(name); !ok {
			utils.BadRequest(c, msg, nil)
			return
		}
		updates["first_name"] = name
	}
	if name := strings.TrimSpace(req.LastName); name != "" {
		if ok, msg := utils.ValidateName(name); !ok {
			utils.BadRequest(c, msg, nil)
			return
		}
		updates["last_name"] = name
	}
	if req.Phone != "" {
		ok, normalized := utils.ValidatePhone(req.Phone)
		if !ok {
			utils.BadRequest(c, normalized, nil)
			return
		}
		updates["phone"] = normalized
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update profile for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update profile", nil)
		return
	}

	utils.LogInfo("Profile updated for user ID: %d", user.ID)
	utils.Success(c, "Profile updated successfully", nil)
}

// UploadProfileImage replaces the customer's profile photo.
func UploadProfileImage(c *gin.Context) {
	utils.LogInfo("UploadProfileImage called")

	user := c.MustGet("user").(models.User)

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "Profile image is required", nil)
		return
	}

	filename, err := utils.SaveUploadedFile(file, "uploads/profiles")
	if err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	old := user.ProfileImage
	if err := config.DB.Model(&user).Update("profile_image", filename).Error; err != nil {
		utils.LogError("Failed to update profile image for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update profile image", nil)
		return
	}
	if old != "" {
		if err := utils.DeleteFile("uploads/profiles/" + old); err != nil {
			utils.LogError("Failed to remove old profile image for user ID: %d: %v", user.ID, err)
		}
	}

	utils.Success(c, "Profile image updated", gin.H{"profile_image": filename})
}
