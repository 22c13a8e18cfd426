package product

import (
	"net/http"

	"balajee_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

// Catalog est injecté par les routes au démarrage
var Catalog *catalog.Provider

//
// 🪑 GET /api/products : tout le catalogue, avec repli sur l'embarqué
//
func GetProducts(c *gin.Context) {
	products, live := Catalog.Products(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"live":     live, // false = catalogue embarqué (base indisponible)
	})
}

//
// 🪑 GET /api/products/:id
//
func GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, live := Catalog.ProductByID(c.Request.Context(), id)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"live":    live,
	})
}

//
// 🔍 GET /api/search?q=...
//
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre q requis"})
		return
	}

	results, err := catalog.SearchProducts(query)
	if err != nil {
		// Elastic indisponible : filtrage naïf sur le catalogue servi
		c.JSON(http.StatusOK, gin.H{
			"results": catalog.FilterByQuery(Catalog, c.Request.Context(), query),
			"live":    false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "live": true})
}
