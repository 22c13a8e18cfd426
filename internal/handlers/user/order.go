package user

import (
	"net/http"

	"balajee_back_end/internal/orders"

	"github.com/gin-gonic/gin"
)

//
// 📦 GET /api/orders : historique du client connecté
//
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	repo := orders.NewScyllaRepository()
	list, err := repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": list})
}

//
// 📦 GET /api/orders/:id : une commande avec ses articles
//
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	repo := orders.NewScyllaRepository()
	order, err := repo.GetByID(c.Request.Context(), userID, orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, order)
}
