package controllers

import (
	"fmt"
	"strconv"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func formatProductCard(product models.Product) gin.H {
	return gin.H{
		"id":             product.ID,
		"name":           product.Name,
		"price":          fmt.Sprintf("%.2f", product.Price),
		"metal":          product.Metal,
		"purity":         product.Purity,
		"weight_grams":   product.WeightGrams,
		"image_url":      product.ImageURL,
		"category_id":    product.CategoryID,
		"in_stock":       product.Stock > 0,
		"average_rating": product.AverageRating,
		"total_reviews":  product.TotalReviews,
	}
}

// ListProducts returns the storefront catalog with search, filters and
// sorting.
func ListProducts(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ? AND categories.blocked = ?", true, false)

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("products.name ILIKE ? OR products.description ILIKE ?", pattern, pattern)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("products.category_id = ?", categoryID)
	}
	if metal := c.Query("metal"); metal != "" {
		query = query.Where("products.metal = ?", metal)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		query = query.Where("products.price >= ?", minPrice)
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		query = query.Where("products.price <= ?", maxPrice)
	}
	if c.Query("featured") == "true" {
		query = query.Where("products.is_featured = ?", true)
	}

	switch c.DefaultQuery("sort", "newest") {
	case "price_asc":
		query = query.Order("products.price asc")
	case "price_desc":
		query = query.Order("products.price desc")
	case "rating":
		query = query.Order("products.average_rating desc")
	case "popular":
		query = query.Order("products.views desc")
	default:
		query = query.Order("products.created_at desc")
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count products", nil)
		return
	}

	var products []models.Product
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}

	formatted := make([]gin.H, 0, len(products))
	for _, product := range products {
		formatted = append(formatted, formatProductCard(product))
	}

	utils.Success(c, "Products retrieved successfully", gin.H{
		"products":   formatted,
		"pagination": pagination.Meta(),
	})
}

// GetProductDetails returns a single product with images and approved
// reviews, bumping the view counter.
func GetProductDetails(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.Preload("Category").Preload("Images").
		Where("is_active = ?", true).
		First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	if product.Category.Blocked {
		utils.NotFound(c, "Product not found")
		return
	}

	// View bump is best effort, never blocks the response.
	if err := config.DB.Model(&product).
		Update("views", gorm.Expr("views + 1")).Error; err != nil {
		utils.LogError("Failed to bump views for product ID: %d: %v", product.ID, err)
	}

	var reviews []models.Review
	if err := config.DB.Preload("User").
		Where("product_id = ? AND is_approved = ?", product.ID, true).
		Order("created_at desc").Limit(20).Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews for product ID: %d: %v", product.ID, err)
	}

	formattedReviews := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		formattedReviews = append(formattedReviews, gin.H{
			"id":       review.ID,
			"username": review.User.Username,
			"rating":   review.Rating,
			"comment":  review.Comment,
			"date":     review.CreatedAt.Format("2006-01-02"),
		})
	}

	images := make([]gin.H, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, gin.H{
			"file_name":  img.FileName,
			"is_primary": img.IsPrimary,
		})
	}

	utils.Success(c, "Product retrieved successfully", gin.H{
		"product": gin.H{
			"id":             product.ID,
			"name":           product.Name,
			"description":    product.Description,
			"price":          fmt.Sprintf("%.2f", product.Price),
			"stock":          product.Stock,
			"metal":          product.Metal,
			"purity":         product.Purity,
			"weight_grams":   product.WeightGrams,
			"image_url":      product.ImageURL,
			"images":         images,
			"category":       gin.H{"id": product.Category.ID, "name": product.Category.Name},
			"average_rating": product.AverageRating,
			"total_reviews":  product.TotalReviews,
			"reviews":        formattedReviews,
		},
	})
}
