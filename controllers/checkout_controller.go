package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// GetCheckoutSummary returns the cart with the discount an offer code
// would grant, without creating anything.
func GetCheckoutSummary(c *gin.Context) {
	utils.LogInfo("GetCheckoutSummary called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	details, err := utils.GetCartDetails(user.ID)
	if err != nil {
		utils.LogError("Failed to get cart details for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get cart details", nil)
		return
	}

	var discount float64
	var offerName string
	if code := c.Query("offer_code"); code != "" {
		eval, err := utils.ApplyOfferCode(config.DB, code, details.Subtotal, time.Now())
		if err == nil {
			discount = eval.DiscountAmount
			offerName = eval.Offer.Title
		} else {
			utils.LogInfo("Offer code %q not applied at checkout summary: %v", code, err)
		}
	}

	items := make([]gin.H, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, gin.H{
			"product_id": item.ProductID,
			"name":       item.Product.Name,
			"quantity":   item.Quantity,
			"price":      fmt.Sprintf("%.2f", item.Product.Price),
			"item_total": fmt.Sprintf("%.2f", item.Product.Price*float64(item.Quantity)),
		})
	}

	utils.Success(c, "Checkout summary retrieved successfully", gin.H{
		"can_checkout": len(items) > 0,
		"items":        items,
		"subtotal":     fmt.Sprintf("%.2f", details.Subtotal),
		"discount":     fmt.Sprintf("%.2f", discount),
		"offer_name":   offerName,
		"total":        fmt.Sprintf("%.2f", utils.Round2(details.Subtotal-discount)),
	})
}

// PlaceOrderRequest represents the checkout request body
type PlaceOrderRequest struct {
	OfferCode       string `json:"offer_code"`
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=online cod"`
	ShippingName    string `json:"shipping_name" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
	ShippingCity    string `json:"shipping_city" binding:"required"`
	ShippingState   string `json:"shipping_state" binding:"required"`
	ShippingPincode string `json:"shipping_pincode" binding:"required"`
	ShippingPhone   string `json:"shipping_phone" binding:"required"`
}

// PlaceOrder converts the cart into an order. The applied offer is
// snapshotted by name and amount so later offer edits never change the
// order. Payment starts Pending; online orders move to Completed only
// through VerifyPayment.
func PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}

	details, err := utils.GetCartDetails(user.ID)
	if err != nil {
		utils.LogError("Failed to get cart details for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get cart details", nil)
		return
	}
	if len(details.Items) == 0 {
		utils.BadRequest(c, "Your cart is empty", nil)
		return
	}
	if ok, msg := utils.CheckCartStock(details.Items); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	var discount float64
	var offerName string
	if req.OfferCode != "" {
		eval, err := utils.ApplyOfferCode(config.DB, req.OfferCode, details.Subtotal, time.Now())
		if err != nil {
			var belowMin *utils.BelowMinimumOrderError
			switch {
			case errors.As(err, &belowMin):
				utils.BadRequest(c, fmt.Sprintf("Cart total must be at least %.2f to use this offer", belowMin.MinOrder), gin.H{
					"minOrderRequired": belowMin.MinOrder,
				})
			case errors.Is(err, utils.ErrOfferNotFound), errors.Is(err, utils.ErrEmptyOfferCode):
				utils.NotFound(c, "Offer not found or expired")
			default:
				utils.LogError("Offer lookup failed during checkout for user ID: %d: %v", user.ID, err)
				utils.InternalServerError(c, "Failed to look up offer", nil)
			}
			return
		}
		discount = eval.DiscountAmount
		offerName = eval.Offer.Title
	}

	order := models.Order{
		UserID:          user.ID,
		Subtotal:        details.Subtotal,
		Discount:        discount,
		Total:           utils.Round2(details.Subtotal - discount),
		OfferName:       offerName,
		PaymentStatus:   models.PaymentStatusPending,
		DeliveryStatus:  models.DeliveryStatusOrdered,
		PaymentMethod:   strings.ToUpper(req.PaymentMethod),
		ShippingName:    req.ShippingName,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingState:   req.ShippingState,
		ShippingPincode: req.ShippingPincode,
		ShippingPhone:   req.ShippingPhone,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for user ID: %d: %v", user.ID, tx.Error)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}

	for _, item := range details.Items {
		orderItem := models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
			Total:     utils.Round2(item.Product.Price * float64(item.Quantity)),
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to create order item for order ID: %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to place order", nil)
			return
		}

		if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
			Update("stock", item.Product.Stock-item.Quantity).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to adjust stock for product ID: %d: %v", item.ProductID, err)
			utils.InternalServerError(c, "Failed to place order", nil)
			return
		}
	}

	// COD orders settle offline, so the cart is done now. Online carts
	// are cleared when the payment is verified.
	if order.PaymentMethod == "COD" {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to clear cart for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to place order", nil)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit order for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}

	utils.LogInfo("Order ID: %d placed for user ID: %d, total: %.2f", order.ID, user.ID, order.Total)
	utils.Created(c, "Order placed successfully", gin.H{
		"order_id":        order.ID,
		"subtotal":        fmt.Sprintf("%.2f", order.Subtotal),
		"discount":        fmt.Sprintf("%.2f", order.Discount),
		"total":           fmt.Sprintf("%.2f", order.Total),
		"offer_name":      order.OfferName,
		"payment_status":  order.PaymentStatus,
		"delivery_status": order.DeliveryStatus,
		"payment_method":  order.PaymentMethod,
	})
}
