package product

import (
	"net/http"
	"time"

	"balajee_back_end/internal/cache"
	"balajee_back_end/internal/database"
	"balajee_back_end/internal/models"
	"balajee_back_end/internal/notify"
	"balajee_back_end/internal/orders"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// Notify est injecté par les routes au démarrage
var Notify *notify.TelegramSink

//
// ⭐ POST /api/products/:id/reviews : avis en attente de modération
//
func CreateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("id")

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La note doit être entre 1 et 5"})
		return
	}

	// Seuls les clients ayant commandé ce produit peuvent laisser un avis
	repo := orders.NewScyllaRepository()
	orderID, purchased, err := repo.HasPurchased(c.Request.Context(), userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification commande"})
		return
	}
	if !purchased {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seuls les acheteurs de ce produit peuvent laisser un avis"})
		return
	}

	userName := "Client"
	if u, err := cache.GetUserFromCache(userID); err == nil && u.Name != "" {
		userName = u.Name
	}

	review := models.Review{
		ID:        gocql.TimeUUID(),
		ProductID: productID,
		OrderID:   orderID,
		UserID:    userID,
		UserName:  userName,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Status:    models.ReviewStatusPending,
		CreatedAt: time.Now(),
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	err = session.Query(`INSERT INTO reviews_by_product
		(product_id, review_id, order_id, user_id, user_name, rating, comment, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		review.ProductID, review.ID, review.OrderID, review.UserID, review.UserName,
		review.Rating, review.Comment, review.Status, review.CreatedAt).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement avis"})
		return
	}

	// Ping modération, jamais bloquant
	if Notify != nil {
		Notify.ReviewSubmitted(review)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Avis enregistré, en attente de modération ⭐",
		"review":  review,
	})
}

//
// ⭐ GET /api/products/:id/reviews : uniquement les avis approuvés
//
func GetApprovedReviews(c *gin.Context) {
	productID := c.Param("id")

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT review_id, order_id, user_id, user_name, rating, comment, status, created_at
		FROM reviews_by_product WHERE product_id = ?`, productID).Iter()

	var reviews []models.Review
	for {
		review := models.Review{ProductID: productID}
		ok := iter.Scan(&review.ID, &review.OrderID, &review.UserID, &review.UserName,
			&review.Rating, &review.Comment, &review.Status, &review.CreatedAt)
		if !ok {
			break
		}
		if review.Status == models.ReviewStatusApproved {
			reviews = append(reviews, review)
		}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture avis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

//
// 🛡️ GET /api/admin/reviews/pending
//
func GetPendingReviews(c *gin.Context) {
	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Volume d'avis faible pour un magasin de meubles, le filtrage passe
	iter := session.Query(`SELECT product_id, review_id, order_id, user_id, user_name, rating, comment, created_at
		FROM reviews_by_product WHERE status = ? ALLOW FILTERING`, models.ReviewStatusPending).Iter()

	var reviews []models.Review
	for {
		review := models.Review{Status: models.ReviewStatusPending}
		ok := iter.Scan(&review.ProductID, &review.ID, &review.OrderID, &review.UserID,
			&review.UserName, &review.Rating, &review.Comment, &review.CreatedAt)
		if !ok {
			break
		}
		reviews = append(reviews, review)
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture avis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

//
// 🛡️ PATCH /api/admin/reviews/:productId/:reviewId : approve / reject
//
func ModerateReview(c *gin.Context) {
	productID := c.Param("productId")
	reviewID, err := gocql.ParseUUID(c.Param("reviewId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID avis invalide"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil ||
		(input.Status != models.ReviewStatusApproved && input.Status != models.ReviewStatusRejected) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut invalide (approved ou rejected)"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	err = session.Query(`UPDATE reviews_by_product SET status = ? WHERE product_id = ? AND review_id = ?`,
		input.Status, productID, reviewID).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur modération avis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Avis " + input.Status})
}
