package controllers

import (
	"strconv"
	"strings"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// ListCategories returns all unblocked categories for the storefront.
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("blocked = ?", false).Order("name asc").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", nil)
		return
	}

	formatted := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		formatted = append(formatted, gin.H{
			"id":          category.ID,
			"name":        category.Name,
			"description": category.Description,
			"image":       category.Image,
		})
	}
	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": formatted})
}

// CategoryRequest represents the create/update category body
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CreateCategory adds a new category. Admin only.
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	var existing models.Category
	if err := config.DB.Where("LOWER(name) = LOWER(?)", req.Name).First(&existing).Error; err == nil {
		utils.Conflict(c, "Category with this name already exists", nil)
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", nil)
		return
	}

	utils.LogInfo("Category created: %s (ID: %d)", category.Name, category.ID)
	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// UpdateCategory edits an existing category. Admin only.
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, categoryID).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	var existing models.Category
	if err := config.DB.Where("LOWER(name) = LOWER(?) AND id != ?", req.Name, category.ID).
		First(&existing).Error; err == nil {
		utils.Conflict(c, "Category with this name already exists", nil)
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	if req.Image != "" {
		category.Image = req.Image
	}
	if err := config.DB.Save(&category).Error; err != nil {
		utils.LogError("Failed to update category ID: %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}

	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// BlockCategory hides a category and its products from the storefront.
func BlockCategory(c *gin.Context) {
	toggleCategoryBlock(c, true)
}

// UnblockCategory restores a hidden category.
func UnblockCategory(c *gin.Context) {
	toggleCategoryBlock(c, false)
}

func toggleCategoryBlock(c *gin.Context, blocked bool) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, categoryID).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	if err := config.DB.Model(&category).Update("blocked", blocked).Error; err != nil {
		utils.LogError("Failed to update category ID: %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}

	msg := "Category unblocked successfully"
	if blocked {
		msg = "Category blocked successfully"
	}
	utils.Success(c, msg, gin.H{"category_id": category.ID, "blocked": blocked})
}

// DeleteCategory soft deletes a category that holds no products.
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, categoryID).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	var productCount int64
	if err := config.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).
		Count(&productCount).Error; err != nil {
		utils.InternalServerError(c, "Failed to check category products", nil)
		return
	}
	if productCount > 0 {
		utils.BadRequest(c, "Cannot delete a category that still has products", gin.H{"product_count": productCount})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.LogError("Failed to delete category ID: %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to delete category", nil)
		return
	}

	utils.LogInfo("Category deleted: %s (ID: %d)", category.Name, category.ID)
	utils.Success(c, "Category deleted successfully", nil)
}
