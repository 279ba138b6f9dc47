package controllers

import (
	"fmt"
	"strconv"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// deliveryTransitions lists the delivery statuses reachable from each
// status. Payment status is never writable from here.
var deliveryTransitions = map[string][]string{
	models.DeliveryStatusOrdered:   {models.DeliveryStatusShipped},
	models.DeliveryStatusShipped:   {models.DeliveryStatusDelivered},
	models.DeliveryStatusDelivered: {models.DeliveryStatusReturned},
	models.DeliveryStatusReturned:  {},
}

// AdminListOrders returns all orders, filterable by payment and delivery
// status.
func AdminListOrders(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{}).Order("created_at desc")
	if ps := c.Query("payment_status"); ps != "" {
		query = query.Where("payment_status = ?", ps)
	}
	if ds := c.Query("delivery_status"); ds != "" {
		query = query.Where("delivery_status = ?", ds)
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count orders", nil)
		return
	}

	var orders []models.Order
	if err := query.Preload("User").Preload("OrderItems").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	formatted := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		formatted = append(formatted, gin.H{
			"id":              order.ID,
			"user_id":         order.UserID,
			"customer":        order.User.Username,
			"date":            order.CreatedAt.Format("2006-01-02 15:04:05"),
			"items":           len(order.OrderItems),
			"total":           fmt.Sprintf("%.2f", order.Total),
			"offer_name":      order.OfferName,
			"payment_status":  order.PaymentStatus,
			"delivery_status": order.DeliveryStatus,
			"payment_method":  order.PaymentMethod,
		})
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{
		"orders":     formatted,
		"pagination": pagination.Meta(),
	})
}

// UpdateDeliveryStatusRequest represents the delivery status update body
type UpdateDeliveryStatusRequest struct {
	DeliveryStatus string `json:"delivery_status" binding:"required"`
}

// UpdateDeliveryStatus advances an order's delivery status along the
// Ordered -> Shipped -> Delivered (-> Returned) chain.
func UpdateDeliveryStatus(c *gin.Context) {
	utils.LogInfo("UpdateDeliveryStatus called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	allowed := false
	for _, next := range deliveryTransitions[order.DeliveryStatus] {
		if next == req.DeliveryStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		utils.BadRequest(c, fmt.Sprintf("Cannot move order from %s to %s", order.DeliveryStatus, req.DeliveryStatus), nil)
		return
	}

	if err := config.DB.Model(&order).Update("delivery_status", req.DeliveryStatus).Error; err != nil {
		utils.LogError("Failed to update delivery status for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Order ID: %d delivery status moved to %s", order.ID, req.DeliveryStatus)
	utils.Success(c, "Delivery status updated", gin.H{
		"order_id":        order.ID,
		"delivery_status": req.DeliveryStatus,
	})
}

// MarkPaymentFailed records an explicit failure callback from the
// gateway. Only Pending orders can fail; Completed and Failed are
// terminal.
func MarkPaymentFailed(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if order.PaymentStatus != models.PaymentStatusPending {
		utils.BadRequest(c, fmt.Sprintf("Payment is already %s for this order", order.PaymentStatus), nil)
		return
	}

	result := config.DB.Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", order.ID, models.PaymentStatusPending).
		Update("payment_status", models.PaymentStatusFailed)
	if result.Error != nil {
		utils.LogError("Failed to mark payment failed for order ID: %d: %v", order.ID, result.Error)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Order ID: %d payment marked Failed", order.ID)
	utils.Success(c, "Payment marked as failed", gin.H{"order_id": order.ID})
}
