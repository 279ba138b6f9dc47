package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type googleUserInfo struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// GoogleLogin redirects the browser to Google's consent screen.
func GoogleLogin(c *gin.Context) {
	utils.LogInfo("GoogleLogin called")

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		utils.InternalServerError(c, "Failed to start sign-in", nil)
		return
	}
	state := base64.URLEncoding.EncodeToString(b)

	session := sessions.Default(c)
	session.Set("oauth_state", state)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session: %v", err)
		utils.InternalServerError(c, "Failed to start sign-in", nil)
		return
	}

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback completes the OAuth exchange and signs the customer
// in, creating the account on first visit.
func GoogleCallback(c *gin.Context) {
	utils.LogInfo("GoogleCallback called")

	session := sessions.Default(c)
	savedState, _ := session.Get("oauth_state").(string)
	session.Delete("oauth_state")
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session: %v", err)
	}

	if savedState == "" || c.Query("state") != savedState {
		utils.BadRequest(c, "Invalid OAuth state", nil)
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "Missing authorization code", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		utils.LogError("OAuth code exchange failed: %v", err)
		utils.BadRequest(c, "Sign-in failed", nil)
		return
	}

	client := config.GoogleOAuthConfig.Client(c.Request.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		utils.LogError("Failed to fetch Google profile: %v", err)
		utils.InternalServerError(c, "Sign-in failed", nil)
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		utils.LogError("Failed to decode Google profile: %v", err)
		utils.InternalServerError(c, "Sign-in failed", nil)
		return
	}
	if info.Email == "" {
		utils.BadRequest(c, "Google account has no email", nil)
		return
	}

	email := strings.ToLower(info.Email)
	var user models.User
	err = config.DB.Where("google_id = ? OR email = ?", info.ID, email).First(&user).Error
	if err != nil {
		// First sign-in, provision the account. Google already verified
		// the email.
		user = models.User{
			Username:   usernameFromEmail(email),
			Email:      email,
			GoogleID:   info.ID,
			FirstName:  info.GivenName,
			LastName:   info.FamilyName,
			IsVerified: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Failed to provision Google user: %v", err)
			utils.InternalServerError(c, "Sign-in failed", nil)
			return
		}
		utils.LogInfo("Provisioned Google account: %s (ID: %d)", user.Email, user.ID)
	} else if user.GoogleID == "" {
		if err := config.DB.Model(&user).Update("google_id", info.ID).Error; err != nil {
			utils.LogError("Failed to link Google ID for user ID: %d: %v", user.ID, err)
		}
	}

	if user.IsBlocked {
		utils.Forbidden(c, "Your account has been blocked")
		return
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Model(&user).Update("last_login_at", user.LastLoginAt).Error; err != nil {
		utils.LogError("Failed to update last login for user ID: %d: %v", user.ID, err)
	}

	jwtToken, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("Google sign-in successful: %s (ID: %d)", user.Email, user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": jwtToken,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// usernameFromEmail derives a unique username from the mailbox part of
// an email address.
func usernameFromEmail(email string) string {
	base := strings.SplitN(email, "@", 2)[0]
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, base)
	if len(base) < 3 {
		base = base + "_user"
	}

	username := base
	for i := 1; ; i++ {
		var count int64
		config.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
		if count == 0 {
			return username
		}
		username = base + strconv.Itoa(i)
	}
}
