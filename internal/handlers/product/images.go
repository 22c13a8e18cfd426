package product

import (
	"net/http"
	"os"

	"balajee_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🖼️ POST /api/admin/products/images : upload d'une image produit
//
func UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier image requis"})
		return
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "balajee-products"
	}

	url, err := services.UploadFile(bucket, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
