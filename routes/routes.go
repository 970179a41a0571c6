package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"table-order/controllers"
	_ "table-order/docs"
	"table-order/middleware"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Category  *controllers.CategoryController
	Menu      *controllers.MenuController
	Order     *controllers.OrderController
	User      *controllers.UserController
	Table     *controllers.TableController
	Dashboard *controllers.DashboardController
}

// NewRouter builds the engine with the shared middleware chain and every API route.
func NewRouter(frontendURL string, ctrls Controllers, authenticator middleware.Authenticator) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORSMiddleware(frontendURL))

	SetupRoutes(router, ctrls, authenticator)
	router.NoRoute(middleware.NotFound)
	return router
}

func SetupRoutes(router *gin.Engine, ctrls Controllers, authenticator middleware.Authenticator) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", controllers.Health)
	api.POST("/auth/login", ctrls.Auth.Login)
	api.POST("/auth/qr-login", ctrls.Auth.QRLogin)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware(authenticator))
	{
		auth.GET("/auth/me", ctrls.Auth.Me)

		auth.GET("/menus", ctrls.Menu.GetMenus)
		auth.GET("/menus/:id", ctrls.Menu.GetMenuByID)

		auth.GET("/categories", ctrls.Category.GetCategories)
		auth.GET("/categories/:id", ctrls.Category.GetCategoryByID)

		auth.GET("/orders/table/:tableNumber", ctrls.Order.GetOrdersByTable)
		auth.GET("/orders/:id", ctrls.Order.GetOrderByID)
	}

	customer := api.Group("/")
	customer.Use(middleware.AuthMiddleware(authenticator), middleware.RequireCustomer())
	{
		customer.POST("/orders", ctrls.Order.CreateOrder)
	}

	kitchen := api.Group("/")
	kitchen.Use(middleware.AuthMiddleware(authenticator), middleware.RequireKitchen())
	{
		kitchen.GET("/orders", ctrls.Order.GetOrders)
		kitchen.PATCH("/orders/:id/status", ctrls.Order.UpdateOrderStatus)
	}

	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(authenticator), middleware.RequireAdmin())
	{
		admin.POST("/auth/register", ctrls.Auth.Register)

		admin.POST("/menus", ctrls.Menu.CreateMenu)
		admin.PUT("/menus/:id", ctrls.Menu.UpdateMenu)
		admin.DELETE("/menus/:id", ctrls.Menu.DeleteMenu)
		admin.POST("/menus/:id/image", ctrls.Menu.UploadMenuImage)

		admin.POST("/categories", ctrls.Category.CreateCategory)
		admin.PUT("/categories/:id", ctrls.Category.UpdateCategory)
		admin.DELETE("/categories/:id", ctrls.Category.DeleteCategory)

		admin.DELETE("/orders/:id", ctrls.Order.DeleteOrder)

		admin.GET("/users", ctrls.User.GetUsers)
		admin.GET("/users/:id", ctrls.User.GetUserByID)
		admin.POST("/users", ctrls.User.CreateUser)
		admin.PUT("/users/:id", ctrls.User.UpdateUser)
		admin.DELETE("/users/:id", ctrls.User.DeleteUser)

		admin.GET("/tables", ctrls.Table.GetTables)
		admin.GET("/dashboard", ctrls.Dashboard.GetStats)
	}
}
