package user

import (
	"net/http"

	"balajee_back_end/internal/cart"
	"balajee_back_end/internal/catalog"
	"balajee_back_end/internal/database"
	"balajee_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// Catalog est injecté par les routes au démarrage
var Catalog *catalog.Provider

func cartStore() *cart.Store {
	return cart.NewStore(database.Redis)
}

func cartResponse(items []models.CartItem) gin.H {
	return gin.H{
		"items": items,
		"total": cart.Total(items),
		"count": cart.Count(items),
	}
}

//
// 🟢 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := cartStore().Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(items))
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID     string `json:"productId"`
		Quantity      int    `json:"quantity"`
		SelectedColor string `json:"selectedColor"`
		SelectedSize  string `json:"selectedSize"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Le prix et le nom viennent du catalogue, jamais du client
	product, _ := Catalog.ProductByID(c.Request.Context(), input.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	store := cartStore()
	items, err := store.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	items = cart.Add(items, *product, cart.AddOptions{
		SelectedColor: input.SelectedColor,
		SelectedSize:  input.SelectedSize,
		Quantity:      input.Quantity,
	})

	if err := store.Save(c.Request.Context(), userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(items))
}

//
// 🟢 PATCH /api/cart/quantity
//
func UpdateCartQuantity(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID     string `json:"productId"`
		SelectedColor string `json:"selectedColor"`
		SelectedSize  string `json:"selectedSize"`
		Delta         int    `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" || input.Delta == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	store := cartStore()
	items, err := store.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	items = cart.UpdateQuantity(items, cart.LineKey{
		ProductID:     input.ProductID,
		SelectedColor: input.SelectedColor,
		SelectedSize:  input.SelectedSize,
	}, input.Delta)

	if err := store.Save(c.Request.Context(), userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(items))
}

//
// 🟢 DELETE /api/cart/item
//
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID     string `json:"productId"`
		SelectedColor string `json:"selectedColor"`
		SelectedSize  string `json:"selectedSize"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	store := cartStore()
	items, err := store.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	items = cart.Remove(items, cart.LineKey{
		ProductID:     input.ProductID,
		SelectedColor: input.SelectedColor,
		SelectedSize:  input.SelectedSize,
	})

	if err := store.Save(c.Request.Context(), userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(items))
}

//
// 🗑️ DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := cartStore().Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vidage panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé 🗑️"})
}
