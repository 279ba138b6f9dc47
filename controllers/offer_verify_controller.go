package controllers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

// VerifyOfferRequest is the storefront's apply-coupon payload. CartTotal
// is a pointer so a missing field can be told apart from a zero subtotal.
type VerifyOfferRequest struct {
	OfferCode string   `json:"offerCode"`
	CartTotal *float64 `json:"cartTotal"`
}

// VerifyOffer checks whether an offer code is redeemable against the
// given cart subtotal and returns the discount that would apply. It never
// mutates anything; the discount is snapshotted onto the order at
// checkout time instead.
func VerifyOffer(c *gin.Context) {
	utils.LogInfo("VerifyOffer called")

	var req VerifyOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid offer verification request: %v", err)
		utils.BadRequest(c, "Offer code and cart total are required", nil)
		return
	}

	if req.OfferCode == "" || req.CartTotal == nil {
		utils.LogError("Offer verification missing fields - code: %q, total present: %t",
			req.OfferCode, req.CartTotal != nil)
		utils.BadRequest(c, "Offer code and cart total are required", nil)
		return
	}
	if math.IsNaN(*req.CartTotal) || math.IsInf(*req.CartTotal, 0) || *req.CartTotal < 0 {
		utils.BadRequest(c, "Cart total must be a valid non-negative amount", nil)
		return
	}

	now := time.Now()
	offer, err := utils.FindRedeemableOffer(config.DB, req.OfferCode, now)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyOfferCode):
			utils.BadRequest(c, "Offer code and cart total are required", nil)
		case errors.Is(err, utils.ErrOfferNotFound):
			utils.LogInfo("Offer code %q not redeemable right now", req.OfferCode)
			utils.NotFound(c, "Offer not found or expired")
		default:
			utils.LogError("Offer lookup failed for code %q: %v", req.OfferCode, err)
			utils.InternalServerError(c, "Failed to look up offer", nil)
		}
		return
	}

	eval, err := utils.EvaluateOffer(offer, *req.CartTotal, now)
	if err != nil {
		var belowMin *utils.BelowMinimumOrderError
		switch {
		case errors.As(err, &belowMin):
			utils.LogInfo("Cart total %.2f below minimum %.2f for offer %q",
				*req.CartTotal, belowMin.MinOrder, offer.Code())
			utils.BadRequest(c, fmt.Sprintf("Cart total must be at least %.2f to use this offer", belowMin.MinOrder), gin.H{
				"minOrderRequired": belowMin.MinOrder,
			})
		case errors.Is(err, utils.ErrInvalidSubtotal):
			utils.BadRequest(c, "Cart total must be a valid non-negative amount", nil)
		default:
			utils.LogError("Offer evaluation failed for code %q: %v", offer.Code(), err)
			utils.InternalServerError(c, "Failed to evaluate offer", nil)
		}
		return
	}

	utils.LogInfo("Offer %q grants discount %.2f on subtotal %.2f",
		offer.Code(), eval.DiscountAmount, *req.CartTotal)
	utils.Success(c, "Offer applied successfully", gin.H{
		"offer":          eval.Offer,
		"discountAmount": fmt.Sprintf("%.2f", eval.DiscountAmount),
		"appliedRate":    strconv.FormatFloat(eval.AppliedRatePercent, 'f', -1, 64) + "%",
		"maxDiscount":    eval.MaxDiscount,
	})
}

// formatActiveOffers shapes offers for the storefront banner strip. The
// slice is always non-nil so an empty catalogue serialises as [].
func formatActiveOffers(all []models.Offer) []gin.H {
	offers := make([]gin.H, 0, len(all))
	for _, o := range all {
		offers = append(offers, gin.H{
			"code":         o.Code(),
			"title":        o.Title,
			"rate":         o.Rate,
			"max_discount": o.MaxDiscount,
			"min_order":    o.OrderTotal,
			"ends_at":      o.EndDate.Format("2006-01-02"),
			"banner":       o.Banner,
		})
	}
	return offers
}

// ListActiveOffers returns the offers currently redeemable, for the
// storefront's offer banner strip.
func ListActiveOffers(c *gin.Context) {
	now := time.Now()

	var all []models.Offer
	if err := config.DB.
		Where("status = ? AND start_date <= ? AND end_date >= ?", models.OfferStatusActive, now, now).
		Order("end_date asc").
		Find(&all).Error; err != nil {
		utils.LogError("Failed to fetch active offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", nil)
		return
	}

	utils.Success(c, "Offers retrieved successfully", gin.H{"offers": formatActiveOffers(all)})
}
