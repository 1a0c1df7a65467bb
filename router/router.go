package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/config"
	"github.com/yeremiapane/hotel-brand-api/controllers"
	"github.com/yeremiapane/hotel-brand-api/docs"
	"github.com/yeremiapane/hotel-brand-api/middlewares"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/services"
)

func SetupRouter(cfg *config.Config, svc *services.Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	metrics := middlewares.NewMetrics()
	limiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(metrics.Middleware())
	r.Use(limiter.RateLimit())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "route not found", "error": "not_found"})
	})

	// Inisialisasi controller
	authCtrl := controllers.NewAuthController(svc.Auth)
	brandCtrl := controllers.NewHotelBrandController(svc.HotelBrands)
	branchCtrl := controllers.NewBranchController(svc.Branches)
	tableCtrl := controllers.NewTableController(svc.Tables)
	foodCtrl := controllers.NewFoodController(svc.Foods)
	orderCtrl := controllers.NewOrderController(svc.Orders)
	userCtrl := controllers.NewUserController(svc.Users)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", metrics.Handler())
	docs.RegisterRoutes(r)

	api := r.Group("/api")

	loginLimiter := middlewares.NewStrictRateLimiter()
	api.POST("/auth/login", loginLimiter.RateLimit(), authCtrl.Login)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("/")
	auth.Use(middlewares.AuthMiddleware(svc.Auth))

	can := middlewares.RequireAction

	auth.GET("/auth/me", can(policy.ActionAuthMe), authCtrl.Me)

	// HOTEL BRANDS
	auth.GET("/hotel-brands", can(policy.ActionHotelBrandList), brandCtrl.GetAllHotelBrands)
	auth.GET("/hotel-brands/my", can(policy.ActionHotelBrandGetMy), brandCtrl.GetMyHotelBrand)
	auth.POST("/hotel-brands", can(policy.ActionHotelBrandCreate), brandCtrl.CreateHotelBrand)
	auth.PUT("/hotel-brands/:id", can(policy.ActionHotelBrandUpdate), brandCtrl.UpdateHotelBrand)
	auth.DELETE("/hotel-brands/:id", can(policy.ActionHotelBrandDelete), brandCtrl.DeleteHotelBrand)

	// BRANCHES
	auth.GET("/branches", can(policy.ActionBranchList), branchCtrl.GetBranches)
	auth.POST("/branches", can(policy.ActionBranchCreate), branchCtrl.CreateBranch)
	auth.PUT("/branches/:id", can(policy.ActionBranchUpdate), branchCtrl.UpdateBranch)
	auth.DELETE("/branches/:id", can(policy.ActionBranchDelete), branchCtrl.DeleteBranch)

	// TABLES (sub-admin, own branch only)
	auth.GET("/tables", can(policy.ActionTableList), tableCtrl.GetAllTables)
	auth.POST("/tables", can(policy.ActionTableCreate), tableCtrl.CreateTable)
	auth.PUT("/tables/:id", can(policy.ActionTableUpdate), tableCtrl.UpdateTable)
	auth.DELETE("/tables/:id", can(policy.ActionTableDelete), tableCtrl.DeleteTable)

	// FOODS
	auth.GET("/foods", can(policy.ActionFoodList), foodCtrl.GetAllFoods)
	auth.GET("/foods/brand/:hotelBrandId", can(policy.ActionFoodListByBrand), foodCtrl.GetFoodsByBrand)
	auth.POST("/foods", can(policy.ActionFoodCreate), foodCtrl.CreateFood)
	auth.PUT("/foods/:id", can(policy.ActionFoodUpdate), foodCtrl.UpdateFood)
	auth.DELETE("/foods/:id", can(policy.ActionFoodDelete), foodCtrl.DeleteFood)

	// ORDERS
	auth.GET("/orders", can(policy.ActionOrderList), orderCtrl.GetAllOrders)
	auth.POST("/orders", can(policy.ActionOrderCreate), orderCtrl.CreateOrder)
	auth.PUT("/orders/:id", can(policy.ActionOrderUpdate), orderCtrl.UpdateOrder)
	auth.DELETE("/orders/:id", can(policy.ActionOrderDelete), orderCtrl.DeleteOrder)

	// USERS
	auth.GET("/users", can(policy.ActionUserList), userCtrl.GetAllUsers)
	auth.POST("/users", can(policy.ActionUserCreate), userCtrl.CreateUser)
	auth.PUT("/users/:id", can(policy.ActionUserUpdate), userCtrl.UpdateUser)
	auth.DELETE("/users/:id", can(policy.ActionUserDelete), userCtrl.DeleteUser)

	return r
}
