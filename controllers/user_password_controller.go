package controllers

import (
	"strings"
	"time"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ForgotPassword emails a reset code to the account's address. The
// response does not reveal whether the address exists.
func ForgotPassword(c *gin.Context) {
	utils.LogInfo("ForgotPassword called")

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err == nil {
		if err := issueSignupOTP(user); err != nil {
			utils.LogError("Failed to issue reset OTP for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to send reset code", nil)
			return
		}
		session := sessions.Default(c)
		session.Set("reset_email", email)
		session.Delete("reset_verified")
		if err := session.Save(); err != nil {
			utils.LogError("Failed to save session: %v", err)
		}
	}

	utils.Success(c, "If that email is registered, a reset code has been sent", nil)
}

// VerifyResetOTPRequest represents the reset code verification body
type VerifyResetOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// VerifyResetOTP checks the emailed code and unlocks the reset step.
func VerifyResetOTP(c *gin.Context) {
	utils.LogInfo("VerifyResetOTP called")

	var req VerifyResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.BadRequest(c, "Invalid reset code", nil)
		return
	}

	var otp models.UserOTP
	if err := config.DB.Where("user_id = ? AND code = ?", user.ID, req.OTP).First(&otp).Error; err != nil {
		utils.BadRequest(c, "Invalid reset code", nil)
		return
	}
	if time.Now().After(otp.ExpiresAt) {
		utils.BadRequest(c, "Reset code has expired", nil)
		return
	}

	session := sessions.Default(c)
	session.Set("reset_email", email)
	session.Set("reset_verified", true)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session: %v", err)
		utils.InternalServerError(c, "Failed to verify code", nil)
		return
	}

	utils.Success(c, "Code verified, you may now reset your password", nil)
}

// ResetPasswordRequest represents the new password body
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ResetPassword sets a new password after the code was verified in this
// session.
func ResetPassword(c *gin.Context) {
	utils.LogInfo("ResetPassword called")

	session := sessions.Default(c)
	email, _ := session.Get("reset_email").(string)
	verified, _ := session.Get("reset_verified").(bool)
	if email == "" || !verified {
		utils.Forbidden(c, "Verify the reset code first")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}
	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", nil)
		return
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.NotFound(c, "Account not found")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	if err := config.DB.Model(&user).Update("password", hashedPassword).Error; err != nil {
		utils.LogError("Failed to reset password for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}
	config.DB.Where("user_id = ?", user.ID).Delete(&models.UserOTP{})

	session.Delete("reset_email")
	session.Delete("reset_verified")
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session: %v", err)
	}

	utils.LogInfo("Password reset for user ID: %d", user.ID)
	utils.Success(c, "Password has been reset successfully", nil)
}

// ChangePasswordRequest represents the authenticated password change body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword updates the password for a logged in customer.
func ChangePassword(c *gin.Context) {
	utils.LogInfo("ChangePassword called")

	user := c.MustGet("user").(models.User)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	if !utils.CheckPassword(req.CurrentPassword, user.Password) {
		utils.Unauthorized(c, "Current password is incorrect")
		return
	}
	if ok, msg := utils.ValidatePassword(req.NewPassword); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to change password", nil)
		return
	}

	if err := config.DB.Model(&user).Update("password", hashedPassword).Error; err != nil {
		utils.LogError("Failed to change password for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to change password", nil)
		return
	}

	utils.LogInfo("Password changed for user ID: %d", user.ID)
	utils.Success(c, "Password changed successfully", nil)
}
