package controllers

import (
	"strconv"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// GetUsers lists registered customers with optional search on username
// and email.
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if blocked := c.Query("blocked"); blocked != "" {
		query = query.Where("is_blocked = ?", blocked == "true")
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count users", nil)
		return
	}

	var users []models.User
	if err := query.Order("created_at desc").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}

	formatted := make([]gin.H, 0, len(users))
	for _, user := range users {
		formatted = append(formatted, gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"email":       user.Email,
			"is_blocked":  user.IsBlocked,
			"is_verified": user.IsVerified,
			"joined":      user.CreatedAt.Format("2006-01-02"),
		})
	}

	utils.Success(c, "Users retrieved successfully", gin.H{
		"users":      formatted,
		"pagination": pagination.Meta(),
	})
}

func setUserBlocked(c *gin.Context, blocked bool) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if user.IsBlocked == blocked {
		msg := "User is already active"
		if blocked {
			msg = "User is already blocked"
		}
		utils.BadRequest(c, msg, nil)
		return
	}

	if err := config.DB.Model(&user).Update("is_blocked", blocked).Error; err != nil {
		utils.LogError("Failed to update block state for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", nil)
		return
	}

	msg := "User unblocked successfully"
	if blocked {
		msg = "User blocked successfully"
	}
	utils.LogInfo("User ID: %d block state set to %v", user.ID, blocked)
	utils.Success(c, msg, gin.H{"user_id": user.ID, "is_blocked": blocked})
}

// BlockUser prevents a customer from logging in or placing orders.
func BlockUser(c *gin.Context) {
	utils.LogInfo("BlockUser called")
	setUserBlocked(c, true)
}

// UnblockUser restores a blocked customer account.
func UnblockUser(c *gin.Context) {
	utils.LogInfo("UnblockUser called")
	setUserBlocked(c, false)
}
