package models

import (
	"time"
)

// Payment status values. Pending transitions to Completed only through a
// verified gateway callback; Completed and Failed are terminal.
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

// Delivery status values, advanced by admin action independently of
// payment status.
const (
	DeliveryStatusOrdered   = "Ordered"
	DeliveryStatusShipped   = "Shipped"
	DeliveryStatusDelivered = "Delivered"
	DeliveryStatusReturned  = "Returned"
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `json:"user_id"`
	User            User        `json:"user" gorm:"foreignKey:UserID"`
	Subtotal        float64     `json:"subtotal"`
	Discount        float64     `json:"discount"`
	Total           float64     `json:"total"` // subtotal - discount
	OfferName       string      `json:"offer_name,omitempty"`
	PaymentStatus   string      `json:"payment_status"`
	DeliveryStatus  string      `json:"delivery_status"`
	PaymentMethod   string      `json:"payment_method"`
	RazorpayOrderID string      `json:"razorpay_order_id,omitempty"`
	ShippingName    string      `json:"shipping_name"`
	ShippingAddress string      `json:"shipping_address"`
	ShippingCity    string      `json:"shipping_city"`
	ShippingState   string      `json:"shipping_state"`
	ShippingPincode string      `json:"shipping_pincode"`
	ShippingPhone   string      `json:"shipping_phone"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	OrderItems      []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// PaymentConfirmable reports whether a verified gateway callback may move
// the order to Completed. Only Pending qualifies; Completed and Failed
// are terminal.
func (o *Order) PaymentConfirmable() bool {
	return o.PaymentStatus == PaymentStatusPending
}

// OrderItem snapshots the product price at order time so later catalog
// edits never alter historical orders.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}
