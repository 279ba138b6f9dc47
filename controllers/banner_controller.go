package controllers

import (
	"strconv"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

const bannerUploadDir = "uploads/banners"

// ListActiveBanners returns homepage banners in display order.
func ListActiveBanners(c *gin.Context) {
	var banners []models.Banner
	if err := config.DB.Where("active = ?", true).
		Order("position asc, created_at desc").Find(&banners).Error; err != nil {
		utils.LogError("Failed to fetch banners: %v", err)
		utils.InternalServerError(c, "Failed to fetch banners", nil)
		return
	}

	formatted := make([]gin.H, 0, len(banners))
	for _, banner := range banners {
		formatted = append(formatted, gin.H{
			"id":       banner.ID,
			"title":    banner.Title,
			"subtitle": banner.Subtitle,
			"image":    banner.Image,
			"link_url": banner.LinkURL,
			"position": banner.Position,
		})
	}
	utils.Success(c, "Banners retrieved successfully", gin.H{"banners": formatted})
}

// CreateBanner uploads a homepage banner. Admin only, multipart form.
func CreateBanner(c *gin.Context) {
	utils.LogInfo("CreateBanner called")

	title := c.PostForm("title")
	if title == "" {
		utils.BadRequest(c, "Title is required", nil)
		return
	}

	position := 0
	if p := c.PostForm("position"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil || parsed < 0 {
			utils.BadRequest(c, "Position must be a non-negative number", nil)
			return
		}
		position = parsed
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "Banner image is required", nil)
		return
	}
	filename, err := utils.SaveUploadedFile(file, bannerUploadDir)
	if err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	banner := models.Banner{
		Title:    title,
		Subtitle: c.PostForm("subtitle"),
		Image:    filename,
		LinkURL:  c.PostForm("link_url"),
		Position: position,
		Active:   true,
	}
	if err := config.DB.Create(&banner).Error; err != nil {
		utils.LogError("Failed to create banner: %v", err)
		utils.InternalServerError(c, "Failed to create banner", nil)
		return
	}

	utils.LogInfo("Banner created: %s (ID: %d)", banner.Title, banner.ID)
	utils.Created(c, "Banner created successfully", gin.H{"banner": banner})
}

// UpdateBanner edits banner fields; image replacement is optional.
func UpdateBanner(c *gin.Context) {
	utils.LogInfo("UpdateBanner called")

	bannerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid banner ID", nil)
		return
	}

	var banner models.Banner
	if err := config.DB.First(&banner, bannerID).Error; err != nil {
		utils.NotFound(c, "Banner not found")
		return
	}

	if title := c.PostForm("title"); title != "" {
		banner.Title = title
	}
	if subtitle := c.PostForm("subtitle"); subtitle != "" {
		banner.Subtitle = subtitle
	}
	if link := c.PostForm("link_url"); link != "" {
		banner.LinkURL = link
	}
	if p := c.PostForm("position"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil || parsed < 0 {
			utils.BadRequest(c, "Position must be a non-negative number", nil)
			return
		}
		banner.Position = parsed
	}
	if active := c.PostForm("active"); active != "" {
		banner.Active = active == "true"
	}
	if file, err := c.FormFile("image"); err == nil {
		filename, err := utils.SaveUploadedFile(file, bannerUploadDir)
		if err != nil {
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		banner.Image = filename
	}

	if err := config.DB.Save(&banner).Error; err != nil {
		utils.LogError("Failed to update banner ID: %d: %v", banner.ID, err)
		utils.InternalServerError(c, "Failed to update banner", nil)
		return
	}

	utils.Success(c, "Banner updated successfully", gin.H{"banner": banner})
}

// DeleteBanner removes a banner.
func DeleteBanner(c *gin.Context) {
	utils.LogInfo("DeleteBanner called")

	bannerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid banner ID", nil)
		return
	}

	var banner models.Banner
	if err := config.DB.First(&banner, bannerID).Error; err != nil {
		utils.NotFound(c, "Banner not found")
		return
	}

	if err := config.DB.Delete(&banner).Error; err != nil {
		utils.LogError("Failed to delete banner ID: %d: %v", banner.ID, err)
		utils.InternalServerError(c, "Failed to delete banner", nil)
		return
	}

	utils.Success(c, "Banner deleted successfully", nil)
}
