package controllers

import (
	"fmt"
	"strconv"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// AddToWishlist adds a product to the user's wishlist
func AddToWishlist(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var existing models.Wishlist
	if err := config.DB.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).First(&existing).Error; err == nil {
		utils.Conflict(c, "Product is already in your wishlist", nil)
		return
	}

	entry := models.Wishlist{UserID: user.ID, ProductID: req.ProductID}
	if err := config.DB.Create(&entry).Error; err != nil {
		utils.LogError("Failed to add to wishlist for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to add to wishlist", nil)
		return
	}

	utils.Success(c, "Product added to wishlist", nil)
}

// GetWishlist returns the user's wishlist
func GetWishlist(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var entries []models.Wishlist
	if err := config.DB.Preload("Product").Where("user_id = ?", user.ID).Find(&entries).Error; err != nil {
		utils.LogError("Failed to fetch wishlist for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch wishlist", nil)
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		items = append(items, gin.H{
			"product_id": entry.ProductID,
			"name":       entry.Product.Name,
			"image_url":  entry.Product.ImageURL,
			"price":      fmt.Sprintf("%.2f", entry.Product.Price),
			"in_stock":   entry.Product.Stock > 0,
			"is_active":  entry.Product.IsActive,
		})
	}

	utils.Success(c, "Wishlist retrieved successfully", gin.H{"items": items})
}

// RemoveFromWishlist removes a product from the user's wishlist
func RemoveFromWishlist(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	result := config.DB.Where("user_id = ? AND product_id = ?", user.ID, productID).Delete(&models.Wishlist{})
	if result.Error != nil {
		utils.LogError("Failed to remove from wishlist for user ID: %d: %v", user.ID, result.Error)
		utils.InternalServerError(c, "Failed to remove from wishlist", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Product not in wishlist")
		return
	}

	utils.Success(c, "Product removed from wishlist", nil)
}
