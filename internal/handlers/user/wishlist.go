package user

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"balajee_back_end/internal/database"
	"balajee_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetWishlist récupère la wishlist de l'utilisateur
func GetWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	// Récupérer depuis Redis d'abord
	ctx := context.Background()
	cacheKey := "wishlist:" + userID

	cached, err := database.Redis.Get(ctx, cacheKey).Result()
	if err == nil {
		var wishlist models.Wishlist
		if json.Unmarshal([]byte(cached), &wishlist) == nil {
			c.JSON(http.StatusOK, wishlist)
			return
		}
	}

	// Sinon depuis ScyllaDB
	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query("SELECT product_id FROM wishlist WHERE user_id = ?", userID).Iter()

	var productIDs []string
	var productID string
	for iter.Scan(&productID) {
		productIDs = append(productIDs, productID)
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture wishlist"})
		return
	}

	// Détails produits via le catalogue (avec repli sur l'embarqué)
	var products []models.Product
	for _, pid := range productIDs {
		if product, _ := Catalog.ProductByID(c.Request.Context(), pid); product != nil {
			products = append(products, *product)
		}
	}

	wishlist := models.Wishlist{
		UserID: userID,
		Items:  products,
	}

	// Mettre en cache
	if data, err := json.Marshal(wishlist); err == nil {
		database.Redis.Set(ctx, cacheKey, data, 10*time.Minute)
	}

	c.JSON(http.StatusOK, wishlist)
}

// AddToWishlist ajoute un produit à la wishlist
func AddToWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Vérifier que le produit existe
	if product, _ := Catalog.ProductByID(c.Request.Context(), req.ProductID); product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	err = session.Query("INSERT INTO wishlist (user_id, product_id, added_at) VALUES (?, ?, ?)",
		userID, req.ProductID, time.Now()).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout wishlist"})
		return
	}

	// Invalider le cache
	database.Redis.Del(context.Background(), "wishlist:"+userID)

	c.JSON(http.StatusOK, gin.H{"message": "Produit ajouté à la wishlist ⭐"})
}

// RemoveFromWishlist retire un produit de la wishlist
func RemoveFromWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	err = session.Query("DELETE FROM wishlist WHERE user_id = ? AND product_id = ?",
		userID, productID).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression wishlist"})
		return
	}

	database.Redis.Del(context.Background(), "wishlist:"+userID)

	c.JSON(http.StatusOK, gin.H{"message": "Produit retiré de la wishlist"})
}
