package controllers

import (
	"fmt"
	"strconv"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// AddToCartRequest represents the add-to-cart request body
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// AddToCart adds a product to the user's cart, merging quantities when
// the product is already there.
func AddToCart(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}
	if !product.IsActive {
		utils.BadRequest(c, "This product is not available", nil)
		return
	}

	var item models.Cart
	err := config.DB.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).First(&item).Error
	newQuantity := req.Quantity
	if err == nil {
		newQuantity += item.Quantity
	}
	if newQuantity > product.Stock {
		utils.BadRequest(c, fmt.Sprintf("Only %d of %q left in stock", product.Stock, product.Name), nil)
		return
	}

	if err == nil {
		item.Quantity = newQuantity
		if err := config.DB.Save(&item).Error; err != nil {
			utils.LogError("Failed to update cart for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
	} else {
		item = models.Cart{UserID: user.ID, ProductID: req.ProductID, Quantity: req.Quantity}
		if err := config.DB.Create(&item).Error; err != nil {
			utils.LogError("Failed to add to cart for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to add to cart", nil)
			return
		}
	}

	utils.Success(c, "Product added to cart", gin.H{"quantity": newQuantity})
}

// GetCart returns the user's cart with the running subtotal
func GetCart(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	details, err := utils.GetCartDetails(user.ID)
	if err != nil {
		utils.LogError("Failed to get cart details for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	items := make([]gin.H, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, gin.H{
			"product_id": item.ProductID,
			"name":       item.Product.Name,
			"image_url":  item.Product.ImageURL,
			"metal":      item.Product.Metal,
			"purity":     item.Product.Purity,
			"price":      fmt.Sprintf("%.2f", item.Product.Price),
			"quantity":   item.Quantity,
			"item_total": fmt.Sprintf("%.2f", item.Product.Price*float64(item.Quantity)),
			"in_stock":   item.Product.Stock >= item.Quantity,
		})
	}

	utils.Success(c, "Cart retrieved successfully", gin.H{
		"items":    items,
		"subtotal": fmt.Sprintf("%.2f", details.Subtotal),
	})
}

// UpdateCart sets the quantity for a cart line
func UpdateCart(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	var item models.Cart
	if err := config.DB.Preload("Product").
		Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).First(&item).Error; err != nil {
		utils.NotFound(c, "Product not in cart")
		return
	}

	if req.Quantity > item.Product.Stock {
		utils.BadRequest(c, fmt.Sprintf("Only %d of %q left in stock", item.Product.Stock, item.Product.Name), nil)
		return
	}

	item.Quantity = req.Quantity
	if err := config.DB.Save(&item).Error; err != nil {
		utils.LogError("Failed to update cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	utils.Success(c, "Cart updated successfully", gin.H{"quantity": item.Quantity})
}

// RemoveFromCart deletes a cart line
func RemoveFromCart(c *gin.Context) {
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

	result := config.DB.Where("user_id = ? AND product_id = ?", user.ID, productID).Delete(&models.Cart{})
	if result.Error != nil {
		utils.LogError("Failed to remove from cart for user ID: %d: %v", user.ID, result.Error)
		utils.InternalServerError(c, "Failed to remove from cart", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Product not in cart")
		return
	}

	utils.Success(c, "Product removed from cart", nil)
}

// ClearCart removes every line from the user's cart
func ClearCart(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
		utils.LogError("Failed to clear cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}

	utils.Success(c, "Cart cleared", nil)
}
