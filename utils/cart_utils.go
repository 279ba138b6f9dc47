package utils

import (
	"fmt"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
)

// CartDetails summarizes a customer's cart before any offer is applied
type CartDetails struct {
	Items    []models.Cart
	Subtotal float64
}

// GetCartDetails loads the cart with products and computes the subtotal
// from live catalog prices.
func GetCartDetails(userID uint) (*CartDetails, error) {
	var items []models.Cart
	if err := config.DB.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, WrapError(err, "failed to fetch cart items")
	}

	details := &CartDetails{Items: items}
	for _, item := range items {
		if !item.Product.IsActive {
			continue
		}
		details.Subtotal += item.Product.Price * float64(item.Quantity)
	}
	details.Subtotal = Round2(details.Subtotal)
	return details, nil
}

// CheckCartStock verifies every cart line is still in stock, returning a
// message describing the first shortfall.
func CheckCartStock(items []models.Cart) (bool, string) {
	for _, item := range items {
		if item.Product.Stock < item.Quantity {
			return false, fmt.Sprintf("Only %d of %q left in stock", item.Product.Stock, item.Product.Name)
		}
	}
	return true, ""
}
