package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/gorm"
)

// POST /v1/user/payment/initiate
func InitiatePayment(c *gin.Context) {
	utils.LogInfo("InitiatePayment called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req struct {
		OrderID uint `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment initiation request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. order_id is required", nil)
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND user_id = ?", req.OrderID, user.ID).First(&order).Error; err != nil {
		utils.LogError("Order not found for ID: %d, user ID: %d", req.OrderID, user.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	if order.PaymentStatus != models.PaymentStatusPending {
		utils.LogError("Payment already settled for order ID: %d, status: %s", order.ID, order.PaymentStatus)
		utils.BadRequest(c, "Payment for this order has already been completed", nil)
		return
	}

	// Razorpay expects the amount in paise
	amountPaise := utils.AmountToPaise(order.Total)
	utils.LogInfo("Creating gateway order for %d paise, order ID: %d", amountPaise, order.ID)

	client := razorpay.NewClient(config.AppConfig.RazorpayKey, config.AppConfig.RazorpaySecret)
	gatewayOrder, err := client.Order.Create(map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         strconv.FormatUint(uint64(order.ID), 10),
		"payment_capture": 1,
	}, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to create payment order", nil)
		return
	}

	razorpayOrderID := fmt.Sprintf("%v", gatewayOrder["id"])
	if err := config.DB.Model(&order).Updates(map[string]interface{}{
		"payment_method":    "RAZORPAY",
		"razorpay_order_id": razorpayOrderID,
	}).Error; err != nil {
		utils.LogError("Failed to store gateway order ID for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order details", nil)
		return
	}

	utils.Success(c, "Payment initiated successfully", gin.H{
		"order": gin.H{
			"id":                order.ID,
			"razorpay_order_id": razorpayOrderID,
			"amount":            fmt.Sprintf("%.2f", order.Total),
		},
		"key": config.AppConfig.RazorpayKey,
		"user": gin.H{
			"name":  user.Username,
			"email": user.Email,
		},
	})
}

// VerifyPaymentRequest is the gateway callback relayed by the storefront.
// Receipt carries our order identifier.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	Receipt           string `json:"receipt" binding:"required"`
}

// POST /v1/user/payment/verify
//
// Authenticates the callback before anything else: the signature is
// recomputed locally from the shared secret and compared in constant
// time. Only an authentic callback may move an order from Pending to
// Completed; a repeated verify on an already-Completed order succeeds
// without touching it. Delivery status is never written here.
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment verification request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", nil)
		return
	}

	if !utils.VerifyPaymentSignature(config.AppConfig.RazorpaySecret,
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		utils.LogError("Payment signature mismatch for receipt %s, user ID: %d", req.Receipt, user.ID)
		utils.BadRequest(c, "Payment verification failed", nil)
		return
	}
	utils.LogInfo("Payment signature verified for receipt %s", req.Receipt)

	orderID, err := strconv.ParseUint(req.Receipt, 10, 64)
	if err != nil {
		utils.LogError("Malformed receipt %q from user ID: %d", req.Receipt, user.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A valid signature with an unknown receipt points at a stale
			// or tampered callback.
			utils.LogError("Order not found for verified payment - receipt %s, user ID: %d", req.Receipt, user.ID)
			utils.NotFound(c, "Order not found")
			return
		}
		utils.LogError("Order lookup failed for receipt %s, user ID: %d: %v", req.Receipt, user.ID, err)
		utils.InternalServerError(c, "Failed to load order", nil)
		return
	}

	if order.RazorpayOrderID != "" && order.RazorpayOrderID != req.RazorpayOrderID {
		utils.LogError("Gateway order ID mismatch for order ID: %d. Expected: %s, Received: %s",
			order.ID, order.RazorpayOrderID, req.RazorpayOrderID)
		utils.BadRequest(c, "Payment verification failed", nil)
		return
	}

	if order.PaymentStatus == models.PaymentStatusCompleted {
		// Second verify with the same valid payload; nothing to do.
		utils.LogInfo("Order ID: %d already marked Completed, verify is a no-op", order.ID)
		utils.Success(c, "Payment already confirmed for this order", gin.H{"order": order})
		return
	}
	if !order.PaymentConfirmable() {
		// Failed is terminal; even a valid callback cannot revive it.
		utils.LogError("Order ID: %d is %s, refusing to confirm payment", order.ID, order.PaymentStatus)
		utils.BadRequest(c, "Payment cannot be confirmed for this order", nil)
		return
	}

	// Conditional update so two racing verifies settle on one transition.
	result := config.DB.Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", order.ID, models.PaymentStatusPending).
		Update("payment_status", models.PaymentStatusCompleted)
	if result.Error != nil {
		utils.LogError("Failed to update payment status for order ID: %d: %v", order.ID, result.Error)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}
	if result.RowsAffected == 0 {
		// Lost the race: somebody settled the order between our read and
		// the update. Completed means a concurrent verify won and this
		// call is a no-op; anything else means the order was failed.
		if err := config.DB.First(&order, order.ID).Error; err == nil &&
			order.PaymentStatus == models.PaymentStatusCompleted {
			utils.LogInfo("Order ID: %d confirmed by a concurrent verify", order.ID)
			utils.Success(c, "Payment already confirmed for this order", gin.H{"order": order})
			return
		}
		utils.LogError("Order ID: %d left Pending before confirmation could land", order.ID)
		utils.BadRequest(c, "Payment cannot be confirmed for this order", nil)
		return
	}
	utils.LogInfo("Order ID: %d payment status moved to Completed", order.ID)

	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
		utils.LogError("Failed to clear cart for user ID: %d: %v", user.ID, err)
	}

	if err := config.DB.Preload("OrderItems.Product").First(&order, order.ID).Error; err != nil {
		utils.LogError("Failed to reload order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to load order", nil)
		return
	}

	go func(email string, orderID uint, total float64) {
		if err := utils.SendOrderConfirmation(email, orderID, total); err != nil {
			utils.LogError("Failed to send order confirmation for order ID: %d: %v", orderID, err)
		}
	}(user.Email, order.ID, order.Total)

	utils.Success(c, "Thank you for your payment! Your order has been placed.", gin.H{
		"order": order,
	})
}
