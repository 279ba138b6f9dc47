package routes

import (
	"github.com/Keerthana-08/GemNest/controllers"
	"github.com/Keerthana-08/GemNest/middleware"
	"github.com/gin-gonic/gin"
)

func initUserRoutes(api *gin.RouterGroup) {
	user := api.Group("/user")
	{
		// Public auth
		user.POST("/signup", controllers.Register)
		user.POST("/signup/verify", controllers.VerifySignupOTP)
		user.POST("/signup/resend-otp", controllers.ResendSignupOTP)
		user.POST("/login", controllers.Login)
		user.POST("/forgot-password", controllers.ForgotPassword)
		user.POST("/forgot-password/verify", controllers.VerifyResetOTP)
		user.POST("/reset-password", controllers.ResetPassword)

		// Public catalog
		user.GET("/categories", controllers.ListCategories)
		user.GET("/products", controllers.ListProducts)
		user.GET("/products/:id", controllers.GetProductDetails)
		user.GET("/products/:id/reviews", controllers.GetProductReviews)
		user.GET("/banners", controllers.ListActiveBanners)
		user.GET("/offers", controllers.ListActiveOffers)
		user.POST("/offers/verify", controllers.VerifyOffer)

		// Authenticated
		authed := user.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/logout", controllers.Logout)

			authed.GET("/profile", controllers.GetProfile)
			authed.PUT("/profile", controllers.UpdateProfile)
			authed.POST("/profile/image", controllers.UploadProfileImage)
			authed.PUT("/profile/password", controllers.ChangePassword)

			authed.GET("/cart", controllers.GetCart)
			authed.POST("/cart", controllers.AddToCart)
			authed.PUT("/cart", controllers.UpdateCart)
			authed.DELETE("/cart/:product_id", controllers.RemoveFromCart)
			authed.DELETE("/cart", controllers.ClearCart)

			authed.GET("/wishlist", controllers.GetWishlist)
			authed.POST("/wishlist", controllers.AddToWishlist)
			authed.DELETE("/wishlist/:product_id", controllers.RemoveFromWishlist)

			authed.GET("/checkout", controllers.GetCheckoutSummary)
			authed.POST("/checkout", controllers.PlaceOrder)

			authed.POST("/payment/initiate", controllers.InitiatePayment)
			authed.POST("/payment/verify", controllers.VerifyPayment)

			authed.GET("/orders", controllers.ListOrders)
			authed.GET("/orders/:id", controllers.GetOrderDetails)
			authed.GET("/orders/:id/invoice", controllers.DownloadInvoice)

			authed.POST("/products/:id/reviews", controllers.AddReview)
		}
	}
}
