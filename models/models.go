package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a storefront customer
type User struct {
	gorm.Model
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profile_image"`
	IsBlocked    bool      `json:"is_blocked"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	LastLoginAt  time.Time `json:"last_login_at"`
	GoogleID     string    `gorm:"unique;default:null" json:"google_id"`
}

// Admin represents a back-office administrator
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Category represents a jewellery category (rings, necklaces, bangles...)
type Category struct {
	gorm.Model
	Name        string    `json:"name" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Products    []Product `json:"products,omitempty"`
	Blocked     bool      `json:"blocked" gorm:"default:false"`
}

// Product represents a jewellery item in the catalog
type Product struct {
	gorm.Model
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	Stock         int            `json:"stock"`
	CategoryID    uint           `json:"category_id"`
	Category      Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Metal         string         `json:"metal"`  // gold, silver, platinum, diamond
	Purity        string         `json:"purity"` // e.g. 22K, 925 sterling
	WeightGrams   float64        `json:"weight_grams"`
	ImageURL      string         `json:"image_url"`
	Images        []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	IsFeatured    bool           `json:"is_featured" gorm:"default:false"`
	Views         int            `json:"views" gorm:"default:0"`
	Reviews       []Review       `json:"reviews,omitempty"`
	AverageRating float64        `json:"average_rating" gorm:"default:0"`
	TotalReviews  int            `json:"total_reviews" gorm:"default:0"`
}

// ProductImage stores an uploaded image filename for a product
type ProductImage struct {
	gorm.Model
	ProductID uint   `json:"product_id"`
	FileName  string `json:"file_name"`
	IsPrimary bool   `json:"is_primary" gorm:"default:false"`
}

// Banner represents a homepage promotional banner
type Banner struct {
	gorm.Model
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	LinkURL  string `json:"link_url"`
	Position int    `json:"position" gorm:"default:0"`
	Active   bool   `json:"active" gorm:"default:true"`
}

// Review represents a customer review on a product
type Review struct {
	gorm.Model
	ProductID  uint   `json:"product_id"`
	UserID     uint   `json:"user_id"`
	User       User   `json:"user"`
	Rating     int    `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment    string `json:"comment"`
	IsApproved bool   `json:"is_approved" gorm:"default:false"`
}

type Cart struct {
	gorm.Model
	UserID    uint    `json:"user_id"`
	User      User    `gorm:"foreignKey:UserID" json:"user"`
	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `json:"quantity"`
}

type Wishlist struct {
	gorm.Model
	UserID    uint    `json:"user_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
}

// UserOTP represents a one-time password for email verification
type UserOTP struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Code      string    `json:"code" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
