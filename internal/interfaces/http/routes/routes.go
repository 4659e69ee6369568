// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/shopfront/internal/interfaces/http/handlers"
	"github.com/your-org/shopfront/internal/interfaces/http/middleware"
	"github.com/your-org/shopfront/internal/pkg/auth"
)

// Handlers groups the handlers mounted under /api/v1
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Cart     *handlers.CartHandler
	Wishlist *handlers.WishlistHandler
	Checkout *handlers.CheckoutHandler
	Orders   *handlers.OrderHandler
	Admin    *handlers.AdminHandler
	Auth     *handlers.AuthHandler
}

// SetupRoutes registers every API route
func SetupRoutes(rg *gin.RouterGroup, h Handlers, tokens *auth.JWTManager) {
	SetupCatalogRoutes(rg, h.Catalog)
	SetupCartRoutes(rg, h.Cart)
	SetupWishlistRoutes(rg, h.Wishlist)
	SetupOrderRoutes(rg, h.Checkout, h.Orders)
	SetupAdminRoutes(rg, h.Admin, h.Auth, tokens)
}

// SetupCatalogRoutes sets up product and category routes
func SetupCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	products := rg.Group("/products")
	{
		products.GET("", h.GetProducts)
		products.GET("/featured", h.GetFeatured)
		products.GET("/trending", h.GetTrending)
		products.GET("/sale", h.GetOnSale)
		products.GET("/new", h.GetNewArrivals)
		products.GET("/low-stock", h.GetLowStock)
		products.GET("/:id", h.GetProduct)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.GetCategories)
		categories.GET("/:id", h.GetCategory)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddToCart)
		cart.PUT("/items/:productId", h.UpdateCartItem)
		cart.DELETE("/items/:productId", h.RemoveFromCart)
		cart.PUT("/promo", h.SetPromoCode)
	}
}

// SetupWishlistRoutes sets up wishlist routes
func SetupWishlistRoutes(rg *gin.RouterGroup, h *handlers.WishlistHandler) {
	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", h.GetWishlist)
		wishlist.DELETE("", h.ClearWishlist)
		wishlist.POST("/items/:productId/toggle", h.ToggleWishlist)
		wishlist.PUT("/items/:productId", h.AddToWishlist)
		wishlist.DELETE("/items/:productId", h.RemoveFromWishlist)
	}
}

// SetupOrderRoutes sets up checkout and order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, orderHandler *handlers.OrderHandler) {
	checkout := rg.Group("/checkout")
	{
		checkout.POST("/quote", checkoutHandler.GetQuote)
		checkout.POST("", checkoutHandler.PlaceOrder)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/invoice", orderHandler.GetInvoice)
	}
}

// SetupAdminRoutes sets up admin related routes
func SetupAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler, authHandler *handlers.AuthHandler, tokens *auth.JWTManager) {
	rg.POST("/admin/login", authHandler.Login)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokens))
	admin.Use(middleware.AdminMiddleware())
	{
		products := admin.Group("/products")
		{
			products.GET("", h.GetProducts)
			products.POST("", h.CreateProduct)
			products.PUT("/:id", h.UpdateProduct)
			products.DELETE("/:id", h.DeleteProduct)
		}

		categories := admin.Group("/categories")
		{
			categories.GET("", h.GetCategories)
			categories.POST("", h.CreateCategory)
			categories.DELETE("/:id", h.DeleteCategory)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", h.GetOrders)
			orders.PUT("/:id/status", h.UpdateOrderStatus)
		}

		admin.GET("/analytics/dashboard", h.GetDashboard)
	}
}
