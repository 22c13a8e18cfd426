package routes

import (
	"os"
	"time"

	checkouthandler "balajee_back_end/internal/handlers/checkout"
	"balajee_back_end/internal/handlers/product"
	"balajee_back_end/internal/handlers/user"
	"balajee_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	frontURL := os.Getenv("FRONTEND_URL")
	if frontURL == "" {
		frontURL = "http://localhost:5173"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// --- Auth ---
	api.POST("/auth/register", middleware.RegisterRateLimit(), user.CreateUser)
	api.POST("/auth/login", middleware.LoginRateLimit(), user.Login)
	api.GET("/auth/:provider", user.BeginAuth)
	api.GET("/auth/:provider/callback", user.CallbackAuth)

	// --- Catalogue (public) ---
	api.GET("/products", product.GetProducts)
	api.GET("/search", middleware.SearchRateLimit(), product.SearchProducts)
	api.GET("/products/:id", product.GetProductByID)
	api.GET("/products/:id/reviews", product.GetApprovedReviews)

	// --- Espace connecté ---
	auth := api.Group("")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/me", user.Me)

		// Panier
		auth.GET("/cart", user.GetCart)
		auth.POST("/cart/add", middleware.CartRateLimit(), user.AddToCart)
		auth.PATCH("/cart/quantity", user.UpdateCartQuantity)
		auth.DELETE("/cart/item", user.RemoveFromCart)
		auth.DELETE("/cart", user.ClearCart)
		auth.GET("/cart/ws", user.CartWebSocket)

		// Wishlist
		auth.GET("/wishlist", user.GetWishlist)
		auth.POST("/wishlist", user.AddToWishlist)
		auth.DELETE("/wishlist/:productId", user.RemoveFromWishlist)

		// Tunnel de commande
		auth.POST("/checkout/start", checkouthandler.StartCheckout)
		auth.GET("/checkout", checkouthandler.GetCheckout)
		auth.PUT("/checkout", checkouthandler.UpdateCheckout)
		auth.POST("/checkout/advance", checkouthandler.AdvanceCheckout)
		auth.POST("/checkout/submit", checkouthandler.SubmitCheckout)
		auth.GET("/checkout/upi-link", checkouthandler.GetUPILink)
		auth.GET("/checkout/upi-qr", checkouthandler.GetUPIQRCode)

		// Commandes
		auth.GET("/orders", user.GetMyOrders)
		auth.GET("/orders/:id", user.GetOrderByID)

		// Avis
		auth.POST("/products/:id/reviews", product.CreateReview)
	}

	// --- Administration ---
	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/reviews/pending", product.GetPendingReviews)
		admin.PATCH("/reviews/:productId/:reviewId", product.ModerateReview)
		admin.POST("/products/images", product.UploadProductImage)
	}
}
