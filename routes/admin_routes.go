package routes

import (
	"github.com/Keerthana-08/GemNest/controllers"
	"github.com/Keerthana-08/GemNest/middleware"
	"github.com/gin-gonic/gin"
)

func initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	{
		admin.POST("/login", controllers.AdminLogin)

		authed := admin.Group("")
		authed.Use(middleware.AdminAuthMiddleware())
		{
			authed.POST("/logout", controllers.AdminLogout)

			authed.GET("/users", controllers.GetUsers)
			authed.PUT("/users/:id/block", controllers.BlockUser)
			authed.PUT("/users/:id/unblock", controllers.UnblockUser)

			authed.POST("/categories", controllers.CreateCategory)
			authed.PUT("/categories/:id", controllers.UpdateCategory)
			authed.PUT("/categories/:id/block", controllers.BlockCategory)
			authed.PUT("/categories/:id/unblock", controllers.UnblockCategory)
			authed.DELETE("/categories/:id", controllers.DeleteCategory)

			authed.POST("/products", controllers.CreateProduct)
			authed.PUT("/products/:id", controllers.UpdateProduct)
			authed.PUT("/products/:id/toggle", controllers.ToggleProductActive)
			authed.DELETE("/products/:id", controllers.DeleteProduct)
			authed.POST("/products/:id/images", controllers.UploadProductImages)

			authed.GET("/reviews/pending", controllers.ListPendingReviews)
			authed.PUT("/reviews/:id/approve", controllers.ApproveReview)
			authed.DELETE("/reviews/:id", controllers.DeleteReview)

			authed.POST("/banners", controllers.CreateBanner)
			authed.PUT("/banners/:id", controllers.UpdateBanner)
			authed.DELETE("/banners/:id", controllers.DeleteBanner)

			authed.GET("/offers", controllers.ListOffers)
			authed.POST("/offers", controllers.CreateOffer)
			authed.PUT("/offers/:id", controllers.UpdateOffer)
			authed.DELETE("/offers/:id", controllers.DeleteOffer)

			authed.GET("/orders", controllers.AdminListOrders)
			authed.PUT("/orders/:id/delivery-status", controllers.UpdateDeliveryStatus)
			authed.PUT("/orders/:id/payment-failed", controllers.MarkPaymentFailed)

			authed.GET("/sales-report", controllers.GetSalesReport)
			authed.GET("/sales-report/excel", controllers.DownloadSalesReportExcel)
		}
	}
}
