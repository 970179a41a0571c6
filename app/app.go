package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"table-order/config"
	"table-order/controllers"
	"table-order/database"
	"table-order/libs"
	"table-order/repositories"
	"table-order/routes"
	"table-order/services"
)

// App owns the connections and the router for one process.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Router *gin.Engine
}

// New connects to Postgres (required), Redis and Cloudinary (both optional) and wires
// every layer into a router.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if cfg.AutoMigrate {
		if err := database.MigrateUp(cfg.DSN()); err != nil {
			return nil, err
		}
	}

	pool, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rdb := config.ConnectRedis(ctx, cfg)

	var cache services.MenuCache
	if rdb != nil {
		cache = libs.NewRedisMenuCache(rdb, cfg.MenuCacheTTL)
	}

	var uploader services.ImageUploader
	cld, err := libs.NewCloudinaryUploader(cfg)
	switch {
	case err == nil:
		uploader = cld
	case errors.Is(err, libs.ErrCloudinaryNotConfigured):
		log.Println("Cloudinary not configured, menu image upload disabled")
	default:
		config.CloseRedis()
		config.CloseDB()
		return nil, fmt.Errorf("cloudinary: %w", err)
	}

	a := &App{Config: cfg, DB: pool, Redis: rdb}
	a.Router = routes.NewRouter(cfg.FrontendURL, a.controllers(cache, uploader), a.authService())
	return a, nil
}

func (a *App) authService() *services.AuthService {
	return services.NewAuthService(
		repositories.NewUserRepository(a.DB),
		repositories.NewTableRepository(a.DB),
		a.Config.JWTSecret,
		a.Config.JWTExpiry,
	)
}

func (a *App) controllers(cache services.MenuCache, uploader services.ImageUploader) routes.Controllers {
	categoryRepo := repositories.NewCategoryRepository(a.DB)
	menuRepo := repositories.NewMenuRepository(a.DB)
	orderRepo := repositories.NewOrderRepository(a.DB)
	userRepo := repositories.NewUserRepository(a.DB)
	tableRepo := repositories.NewTableRepository(a.DB)

	userService := services.NewUserService(userRepo)

	return routes.Controllers{
		Auth:      controllers.NewAuthController(a.authService(), userService),
		Category:  controllers.NewCategoryController(services.NewCategoryService(categoryRepo, menuRepo, cache)),
		Menu:      controllers.NewMenuController(services.NewMenuService(menuRepo, categoryRepo, cache, uploader), a.Config.MaxUploadSize),
		Order:     controllers.NewOrderController(services.NewOrderService(orderRepo, menuRepo)),
		User:      controllers.NewUserController(userService),
		Table:     controllers.NewTableController(services.NewTableService(tableRepo)),
		Dashboard: controllers.NewDashboardController(services.NewDashboardService(orderRepo, menuRepo, categoryRepo, userRepo)),
	}
}

func (a *App) Close() {
	config.CloseRedis()
	config.CloseDB()
}
