package routes

import (
	"frontdesk/controllers"
	middlewares "frontdesk/middleware"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, views *services.ViewRegistry, upstream *services.Upstream) {

	roomGridController := controllers.NewRoomGridController(views)
	allocationController := controllers.NewAllocationController(views)
	roomController := controllers.NewRoomController(views, upstream)
	reviewController := controllers.NewReviewController(upstream)
	authController := controllers.NewAuthController(upstream)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	// Màn hình quản lý số phòng
	v1.POST("/roomGrid/open", middlewares.AuthMiddleware(1, 2), roomGridController.OpenRoomGrid)
	v1.DELETE("/roomGrid", middlewares.AuthMiddleware(1, 2), roomGridController.CloseRoomGrid)
	v1.GET("/roomGrid", middlewares.AuthMiddleware(1, 2), roomGridController.GetRoomGrid)
	v1.PUT("/roomGrid/filters", middlewares.AuthMiddleware(1, 2), roomGridController.UpdateFilters)
	v1.PUT("/roomGrid/clearFilters", middlewares.AuthMiddleware(1, 2), roomGridController.ClearFilters)
	v1.POST("/roomGrid/refresh", middlewares.AuthMiddleware(1, 2), roomGridController.RefreshRoomGrid)

	// Modal gán phòng cho đơn
	v1.POST("/allocation/open", middlewares.AuthMiddleware(1, 2), allocationController.OpenAllocation)
	v1.POST("/allocation/select", middlewares.AuthMiddleware(1, 2), allocationController.SelectBooking)
	v1.POST("/allocation/submit", middlewares.AuthMiddleware(1, 2), allocationController.SubmitAllocation)
	v1.DELETE("/allocation", middlewares.AuthMiddleware(1, 2), allocationController.CloseAllocation)
	v1.GET("/allocation", middlewares.AuthMiddleware(1, 2), allocationController.GetAllocation)

	// Tạo số phòng và đổi trạng thái housekeeping
	v1.POST("/roomNumbers/bulkCreate", middlewares.AuthMiddleware(1, 2), roomController.BulkCreateRoomNumbers)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(1, 2), roomController.ChangeRoomStatus)
	v1.GET("/roomTypes", middlewares.AuthMiddleware(1, 2), roomController.GetRoomTypes)
	v1.GET("/roomTypes/suggest", middlewares.AuthMiddleware(1, 2), roomController.SuggestRoomTypes)

	// Đánh giá
	v1.POST("/reviews", reviewController.CreateReview)

	// Quên mật khẩu
	v1.POST("/forgetPassword", authController.ForgetPassword)
	v1.POST("/newPassword", authController.ResetPassword)

	// Tùy chọn trợ năng
	v1.GET("/preferences", controllers.GetPreferences)
	v1.PUT("/preferences", controllers.UpdatePreferences)
}
