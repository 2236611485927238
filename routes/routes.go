package routes

import (
	"luxelane/controllers"
	"luxelane/middleware"
	"luxelane/repository"
	"luxelane/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	catalog *repository.CatalogRepository,
	sessions *services.SessionManager,
	tokens *services.TokenService,
) {
	authController := controllers.NewAuthController(sessions, tokens)
	productController := controllers.NewProductController(catalog)
	cartController := controllers.NewCartController()
	checkoutController := controllers.NewCheckoutController()
	orderController := controllers.NewOrderController(services.NewInvoiceService())
	viewController := controllers.NewViewController()

	r.POST("/session", authController.CreateSession)

	api := r.Group("/")
	api.Use(middleware.SessionMiddleware(tokens, sessions))
	{
		api.POST("/auth/login", authController.Login)
		api.POST("/auth/logout", authController.Logout)

		api.GET("/products", productController.GetProducts)
		api.GET("/products/:product_id", productController.GetProduct)

		api.GET("/cart", cartController.GetCart)
		api.POST("/cart/items", cartController.AddItem)
		api.DELETE("/cart/items/:product_id", cartController.RemoveItem)
		api.PATCH("/cart/items/:product_id", cartController.UpdateQuantity)
		api.POST("/cart/toggle", cartController.ToggleCart)
		api.POST("/cart/close", cartController.CloseCart)
		api.DELETE("/cart", cartController.ClearCart)

		api.POST("/checkout", checkoutController.Enter)
		api.GET("/checkout", checkoutController.GetState)
		api.POST("/checkout/shipping", checkoutController.SubmitShipping)
		api.PUT("/checkout/payment", checkoutController.UpdatePayment)
		api.POST("/checkout/back", checkoutController.Back)
		api.POST("/checkout/payment", checkoutController.SubmitPayment)

		api.GET("/orders", orderController.GetOrders)
		api.GET("/orders/:order_id", orderController.GetOrder)
		api.GET("/orders/:order_id/invoice", orderController.GetInvoice)

		api.GET("/view", viewController.GetView)
		api.POST("/view/select/:product_id", viewController.SelectProduct)
		api.POST("/view/back", viewController.Back)
		api.POST("/view/orders", viewController.ViewOrders)
		api.POST("/view/continue", viewController.ContinueShopping)
		api.POST("/view/login/dismiss", viewController.DismissLogin)
		api.POST("/view/toast/dismiss", viewController.DismissToast)
	}
}
