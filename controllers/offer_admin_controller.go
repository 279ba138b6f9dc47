package controllers

import (
	"strconv"
	"time"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
)

const offerBannerDir = "uploads/offers"

func parseOfferDates(startStr, endStr string) (time.Time, time.Time, bool) {
	start, err1 := time.Parse(time.RFC3339, startStr)
	end, err2 := time.Parse(time.RFC3339, endStr)
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// CreateOffer creates a new offer from a multipart form so the banner
// image can ride along with the fields.
func CreateOffer(c *gin.Context) {
	utils.LogInfo("CreateOffer called")

	title := c.PostForm("title")
	rate, errRate := strconv.ParseFloat(c.PostForm("rate"), 64)
	maxDiscount, errMax := strconv.ParseFloat(c.PostForm("max_discount"), 64)
	orderTotal, errMin := strconv.ParseFloat(c.PostForm("order_total"), 64)

	if title == "" || errRate != nil || errMax != nil || errMin != nil {
		utils.BadRequest(c, "title, rate, max_discount and order_total are required", nil)
		return
	}
	if rate <= 0 || rate > 100 {
		utils.BadRequest(c, "Rate must be a percentage between 1 and 100", nil)
		return
	}
	if maxDiscount <= 0 {
		utils.BadRequest(c, "Maximum discount must be greater than zero", nil)
		return
	}
	if orderTotal < 0 {
		utils.BadRequest(c, "Minimum order total cannot be negative", nil)
		return
	}

	start, end, ok := parseOfferDates(c.PostForm("start_date"), c.PostForm("end_date"))
	if !ok {
		utils.BadRequest(c, "Invalid date format. Use RFC3339.", nil)
		return
	}
	if end.Before(start) {
		utils.BadRequest(c, "End date must not be before start date", nil)
		return
	}

	// Codes are derived from titles, so two offers must not normalize to
	// the same code.
	code := models.NormalizeOfferCode(title)
	var existing []models.Offer
	if err := config.DB.Find(&existing).Error; err != nil {
		utils.LogError("Failed to check existing offers: %v", err)
		utils.InternalServerError(c, "Failed to create offer", nil)
		return
	}
	if models.OfferCodeTaken(existing, code, 0) {
		utils.Conflict(c, "An offer with this code already exists", nil)
		return
	}

	offer := models.Offer{
		Title:       title,
		Rate:        rate,
		MaxDiscount: maxDiscount,
		OrderTotal:  orderTotal,
		StartDate:   start,
		EndDate:     end,
		Status:      models.OfferStatusActive,
	}

	if file, err := c.FormFile("banner"); err == nil {
		filename, err := utils.SaveUploadedFile(file, offerBannerDir)
		if err != nil {
			utils.LogError("Failed to save offer banner: %v", err)
			utils.BadRequest(c, "Failed to save banner image", gin.H{"error": err.Error()})
			return
		}
		offer.Banner = filename
	}

	if err := config.DB.Create(&offer).Error; err != nil {
		utils.LogError("Failed to create offer: %v", err)
		utils.InternalServerError(c, "Failed to create offer", nil)
		return
	}

	utils.LogInfo("Created offer %q (code %s)", offer.Title, offer.Code())
	utils.Created(c, "Offer created successfully", gin.H{"offer": offer, "code": offer.Code()})
}

// UpdateOffer updates fields of an existing offer; all fields optional,
// banner replaceable.
func UpdateOffer(c *gin.Context) {
	utils.LogInfo("UpdateOffer called")

	var offer models.Offer
	if err := config.DB.First(&offer, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Offer not found")
		return
	}

	if title := c.PostForm("title"); title != "" && title != offer.Title {
		// Renaming rederives the code, so the new title must not collide
		// with any other offer's code.
		var existing []models.Offer
		if err := config.DB.Find(&existing).Error; err != nil {
			utils.LogError("Failed to check existing offers: %v", err)
			utils.InternalServerError(c, "Failed to update offer", nil)
			return
		}
		if models.OfferCodeTaken(existing, models.NormalizeOfferCode(title), offer.ID) {
			utils.Conflict(c, "An offer with this code already exists", nil)
			return
		}
		offer.Title = title
	}
	if rateStr := c.PostForm("rate"); rateStr != "" {
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil || rate <= 0 || rate > 100 {
			utils.BadRequest(c, "Rate must be a percentage between 1 and 100", nil)
			return
		}
		offer.Rate = rate
	}
	if maxStr := c.PostForm("max_discount"); maxStr != "" {
		maxDiscount, err := strconv.ParseFloat(maxStr, 64)
		if err != nil || maxDiscount <= 0 {
			utils.BadRequest(c, "Maximum discount must be greater than zero", nil)
			return
		}
		offer.MaxDiscount = maxDiscount
	}
	if minStr := c.PostForm("order_total"); minStr != "" {
		orderTotal, err := strconv.ParseFloat(minStr, 64)
		if err != nil || orderTotal < 0 {
			utils.BadRequest(c, "Minimum order total cannot be negative", nil)
			return
		}
		offer.OrderTotal = orderTotal
	}
	if startStr := c.PostForm("start_date"); startStr != "" {
		if t, err := time.Parse(time.RFC3339, startStr); err == nil {
			offer.StartDate = t
		}
	}
	if endStr := c.PostForm("end_date"); endStr != "" {
		if t, err := time.Parse(time.RFC3339, endStr); err == nil {
			offer.EndDate = t
		}
	}
	if offer.EndDate.Before(offer.StartDate) {
		utils.BadRequest(c, "End date must not be before start date", nil)
		return
	}
	if status := c.PostForm("status"); status != "" {
		if status != models.OfferStatusActive && status != models.OfferStatusInactive {
			utils.BadRequest(c, "Status must be Active or Inactive", nil)
			return
		}
		offer.Status = status
	}

	if file, err := c.FormFile("banner"); err == nil {
		filename, err := utils.SaveUploadedFile(file, offerBannerDir)
		if err != nil {
			utils.LogError("Failed to save offer banner: %v", err)
			utils.BadRequest(c, "Failed to save banner image", gin.H{"error": err.Error()})
			return
		}
		offer.Banner = filename
	}

	if err := config.DB.Save(&offer).Error; err != nil {
		utils.LogError("Failed to update offer ID: %d: %v", offer.ID, err)
		utils.InternalServerError(c, "Failed to update offer", nil)
		return
	}

	utils.Success(c, "Offer updated successfully", gin.H{"offer": offer, "code": offer.Code()})
}

// DeleteOffer soft-deletes an offer
func DeleteOffer(c *gin.Context) {
	result := config.DB.Delete(&models.Offer{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Failed to delete offer: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete offer", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Offer not found")
		return
	}
	utils.Success(c, "Offer deleted successfully", nil)
}

// ListOffers returns all offers with redeemability flags, for the admin
// back-office.
func ListOffers(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Offer{}).Order("created_at desc")
	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.InternalServerError(c, "Failed to count offers", nil)
		return
	}

	var offers []models.Offer
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&offers).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch offers", nil)
		return
	}

	now := time.Now()
	formatted := make([]gin.H, 0, len(offers))
	for _, offer := range offers {
		formatted = append(formatted, gin.H{
			"id":           offer.ID,
			"title":        offer.Title,
			"code":         offer.Code(),
			"rate":         offer.Rate,
			"max_discount": offer.MaxDiscount,
			"order_total":  offer.OrderTotal,
			"start_date":   offer.StartDate.Format(time.RFC3339),
			"end_date":     offer.EndDate.Format(time.RFC3339),
			"status":       offer.Status,
			"banner":       offer.Banner,
			"redeemable":   offer.Redeemable(now),
		})
	}

	utils.Success(c, "Offers retrieved successfully", gin.H{
		"offers":     formatted,
		"pagination": pagination.Meta(),
	})
}
