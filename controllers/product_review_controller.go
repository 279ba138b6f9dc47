package controllers

import (
	"strconv"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddReviewRequest represents the review submission body
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

// AddReview lets a customer review a product they have received.
func AddReview(c *gin.Context) {
	utils.LogInfo("AddReview called")

	user := c.MustGet("user").(models.User)
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	// One review per customer per product.
	var existing models.Review
	if err := config.DB.Where("product_id = ? AND user_id = ?", product.ID, user.ID).
		First(&existing).Error; err == nil {
		utils.Conflict(c, "You have already reviewed this product", nil)
		return
	}

	var delivered int64
	if err := config.DB.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.product_id = ? AND orders.user_id = ? AND orders.delivery_status = ?",
			product.ID, user.ID, models.DeliveryStatusDelivered).
		Count(&delivered).Error; err != nil {
		utils.InternalServerError(c, "Failed to verify purchase", nil)
		return
	}
	if delivered == 0 {
		utils.Forbidden(c, "Only customers who received this product can review it")
		return
	}

	review := models.Review{
		ProductID: product.ID,
		UserID:    user.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		utils.LogError("Failed to create review: %v", err)
		utils.InternalServerError(c, "Failed to submit review", nil)
		return
	}

	utils.LogInfo("Review ID: %d submitted for product ID: %d", review.ID, product.ID)
	utils.Created(c, "Review submitted and awaiting approval", gin.H{"review_id": review.ID})
}

// GetProductReviews lists approved reviews for a product.
func GetProductReviews(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Review{}).
		Where("product_id = ? AND is_approved = ?", productID, true)
	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count reviews", nil)
		return
	}

	var reviews []models.Review
	if err := query.Preload("User").Order("created_at desc").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	formatted := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		formatted = append(formatted, gin.H{
			"id":       review.ID,
			"username": review.User.Username,
			"rating":   review.Rating,
			"comment":  review.Comment,
			"date":     review.CreatedAt.Format("2006-01-02"),
		})
	}

	utils.Success(c, "Reviews retrieved successfully", gin.H{
		"reviews":    formatted,
		"pagination": pagination.Meta(),
	})
}

// recalcProductRating refreshes the denormalised rating columns from
// approved reviews.
func recalcProductRating(tx *gorm.DB, productID uint) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	if err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Scan(&stats).Error; err != nil {
		return err
	}
	return tx.Model(&models.Product{}).Where("id = ?", productID).Updates(map[string]interface{}{
		"average_rating": utils.Round2(stats.Avg),
		"total_reviews":  stats.Count,
	}).Error
}

// ApproveReview publishes a pending review. Admin only.
func ApproveReview(c *gin.Context) {
	utils.LogInfo("ApproveReview called")

	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid review ID", nil)
		return
	}

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		utils.NotFound(c, "Review not found")
		return
	}
	if review.IsApproved {
		utils.BadRequest(c, "Review is already approved", nil)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&review).Update("is_approved", true).Error; err != nil {
			return err
		}
		return recalcProductRating(tx, review.ProductID)
	})
	if err != nil {
		utils.LogError("Failed to approve review ID: %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to approve review", nil)
		return
	}

	utils.Success(c, "Review approved", gin.H{"review_id": review.ID})
}

// DeleteReview removes a review and refreshes the product rating.
func DeleteReview(c *gin.Context) {
	utils.LogInfo("DeleteReview called")

	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid review ID", nil)
		return
	}

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		utils.NotFound(c, "Review not found")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recalcProductRating(tx, review.ProductID)
	})
	if err != nil {
		utils.LogError("Failed to delete review ID: %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to delete review", nil)
		return
	}

	utils.Success(c, "Review deleted", nil)
}

// ListPendingReviews shows reviews awaiting moderation. Admin only.
func ListPendingReviews(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Review{}).Where("is_approved = ?", false)
	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count reviews", nil)
		return
	}

	var reviews []models.Review
	if err := query.Preload("User").Order("created_at asc").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&reviews).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	formatted := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		formatted = append(formatted, gin.H{
			"id":         review.ID,
			"product_id": review.ProductID,
			"username":   review.User.Username,
			"rating":     review.Rating,
			"comment":    review.Comment,
			"date":       review.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	utils.Success(c, "Pending reviews retrieved", gin.H{
		"reviews":    formatted,
		"pagination": pagination.Meta(),
	})
}
