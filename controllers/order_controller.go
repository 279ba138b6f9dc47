package controllers

import (
	"fmt"
	"strconv"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// ListOrders returns the user's orders, newest first
func ListOrders(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID).Order("created_at desc")
	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count orders", nil)
		return
	}

	var orders []models.Order
	if err := query.Preload("OrderItems.Product").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	formatted := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		formatted = append(formatted, gin.H{
			"id":              order.ID,
			"date":            order.CreatedAt.Format("2006-01-02 15:04:05"),
			"items":           len(order.OrderItems),
			"subtotal":        fmt.Sprintf("%.2f", order.Subtotal),
			"discount":        fmt.Sprintf("%.2f", order.Discount),
			"total":           fmt.Sprintf("%.2f", order.Total),
			"offer_name":      order.OfferName,
			"payment_status":  order.PaymentStatus,
			"delivery_status": order.DeliveryStatus,
		})
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{
		"orders":     formatted,
		"pagination": pagination.Meta(),
	})
}

// GetOrderDetails returns one of the user's orders with its lines
func GetOrderDetails(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.Preload("OrderItems.Product").
		Where("id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	items := make([]gin.H, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, gin.H{
			"product_id": item.ProductID,
			"name":       item.Product.Name,
			"image_url":  item.Product.ImageURL,
			"quantity":   item.Quantity,
			"price":      fmt.Sprintf("%.2f", item.Price),
			"total":      fmt.Sprintf("%.2f", item.Total),
		})
	}

	utils.Success(c, "Order retrieved successfully", gin.H{
		"order": gin.H{
			"id":              order.ID,
			"date":            order.CreatedAt.Format("2006-01-02 15:04:05"),
			"items":           items,
			"subtotal":        fmt.Sprintf("%.2f", order.Subtotal),
			"discount":        fmt.Sprintf("%.2f", order.Discount),
			"total":           fmt.Sprintf("%.2f", order.Total),
			"offer_name":      order.OfferName,
			"payment_status":  order.PaymentStatus,
			"delivery_status": order.DeliveryStatus,
			"payment_method":  order.PaymentMethod,
			"shipping": gin.H{
				"name":    order.ShippingName,
				"address": order.ShippingAddress,
				"city":    order.ShippingCity,
				"state":   order.ShippingState,
				"pincode": order.ShippingPincode,
				"phone":   order.ShippingPhone,
			},
		},
	})
}
