package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/configs"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/controllers"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/middlewares"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/repository"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/services"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/session"
)

func RegisterRoutes(r *gin.Engine, store *configs.Store, sessions *session.Store, cfg *configs.Config) error {
	db, err := store.DB()
	if err != nil {
		return err
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, sessions, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(foodRepo)
	cartSvc := services.NewCartService(sessions, foodRepo)
	orderSvc := services.NewOrderService(store, orderRepo, foodRepo, cfg.CheckoutTimeout)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, sessions)

	api := r.Group("/api")

	// Public
	api.GET("/test", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	api.POST("/register", authCtrl.Register)
	api.POST("/login", authCtrl.Login)
	api.GET("/menu", menuCtrl.List)
	api.GET("/menu/:id", menuCtrl.Detail)
	api.GET("/categories", menuCtrl.Categories)

	// Protected
	authed := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		authed.POST("/logout", authCtrl.Logout)
		authed.GET("/user/profile", authCtrl.Profile)

		authed.GET("/cart", cartCtrl.Get)
		authed.POST("/cart/add", cartCtrl.Add)
		authed.POST("/cart/clear", cartCtrl.Clear)

		authed.POST("/order", orderCtrl.Place)
		authed.GET("/orders", orderCtrl.ListForMe)
		authed.GET("/orders/:id", orderCtrl.Detail)
	}

	return nil
}
