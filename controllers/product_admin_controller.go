package controllers

import (
	"strconv"
	"strings"

	"github.com/Keerthana-08/GemNest/config"
	"github.com/Keerthana-08/GemNest/models"
	"github.com/Keerthana-08/GemNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var allowedMetals = map[string]bool{
	"gold":     true,
	"silver":   true,
	"platinum": true,
	"diamond":  true,
}

// ProductRequest represents the create/update product body
type ProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=150"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Metal       string  `json:"metal" binding:"required"`
	Purity      string  `json:"purity"`
	WeightGrams float64 `json:"weight_grams" binding:"gte=0"`
	IsFeatured  bool    `json:"is_featured"`
}

func (r *ProductRequest) validate() (string, bool) {
	r.Name = strings.TrimSpace(r.Name)
	r.Metal = strings.ToLower(strings.TrimSpace(r.Metal))
	if !allowedMetals[r.Metal] {
		return "Metal must be one of gold, silver, platinum, diamond", false
	}
	return "", true
}

// CreateProduct adds a jewellery item to the catalog. Admin only.
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}
	if msg, ok := req.validate(); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.BadRequest(c, "Category not found", nil)
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       utils.Round2(req.Price),
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		Metal:       req.Metal,
		Purity:      req.Purity,
		WeightGrams: req.WeightGrams,
		IsFeatured:  req.IsFeatured,
		IsActive:    true,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	utils.LogInfo("Product created: %s (ID: %d)", product.Name, product.ID)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// UpdateProduct edits an existing product. Admin only.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", gin.H{"error": err.Error()})
		return
	}
	if msg, ok := req.validate(); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	if req.CategoryID != product.CategoryID {
		var category models.Category
		if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
			utils.BadRequest(c, "Category not found", nil)
			return
		}
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = utils.Round2(req.Price)
	product.Stock = req.Stock
	product.CategoryID = req.CategoryID
	product.Metal = req.Metal
	product.Purity = req.Purity
	product.WeightGrams = req.WeightGrams
	product.IsFeatured = req.IsFeatured

	if err := config.DB.Save(&product).Error; err != nil {
		utils.LogError("Failed to update product ID: %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// ToggleProductActive flips a product's storefront visibility.
func ToggleProductActive(c *gin.Context) {
	utils.LogInfo("ToggleProductActive called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	newState := !product.IsActive
	if err := config.DB.Model(&product).Update("is_active", newState).Error; err != nil {
		utils.LogError("Failed to toggle product ID: %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	utils.Success(c, "Product visibility updated", gin.H{
		"product_id": product.ID,
		"is_active":  newState,
	})
}

// DeleteProduct soft deletes a product and removes it from carts and
// wishlists.
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Wishlist{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		utils.LogError("Failed to delete product ID: %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	utils.LogInfo("Product deleted: %s (ID: %d)", product.Name, product.ID)
	utils.Success(c, "Product deleted successfully", nil)
}

// UploadProductImages accepts multipart image uploads for a product.
func UploadProductImages(c *gin.Context) {
	utils.LogInfo("UploadProductImages called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequest(c, "Invalid multipart form", nil)
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequest(c, "No images provided", nil)
		return
	}

	var saved []string
	for _, file := range files {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		filename, err := utils.SaveUploadedFile(file, "uploads/products")
		if err != nil {
			utils.LogError("Failed to save product image: %v", err)
			utils.InternalServerError(c, "Failed to save image", nil)
			return
		}
		image := models.ProductImage{
			ProductID: product.ID,
			FileName:  filename,
			IsPrimary: product.ImageURL == "" && len(saved) == 0,
		}
		if err := config.DB.Create(&image).Error; err != nil {
			utils.LogError("Failed to record product image: %v", err)
			utils.InternalServerError(c, "Failed to save image", nil)
			return
		}
		saved = append(saved, filename)
	}

	// First upload becomes the card image when none is set.
	if product.ImageURL == "" && len(saved) > 0 {
		if err := config.DB.Model(&product).Update("image_url", saved[0]).Error; err != nil {
			utils.LogError("Failed to set primary image for product ID: %d: %v", product.ID, err)
		}
	}

	utils.Created(c, "Images uploaded successfully", gin.H{
		"product_id": product.ID,
		"images":     saved,
	})
}
