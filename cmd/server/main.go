package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"balajee_back_end/internal/catalog"
	"balajee_back_end/internal/config"
	"balajee_back_end/internal/database"
	"balajee_back_end/internal/handlers/product"
	"balajee_back_end/internal/handlers/user"
	"balajee_back_end/internal/notify"
	"balajee_back_end/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️ Clé Stripe absente — paiement carte simulé")
	} else {
		log.Println("✅ Stripe initialisé")
	}

	database.ConnectDatabases()

	// Prepared statements pour les requêtes utilisateurs fréquentes
	database.InitPreparedStatements()

	// Pré-chauffer le cache Redis
	warmupRedisCache()

	initOAuthProviders()

	// Catalogue avec repli sur l'embarqué, partagé par les handlers
	provider := catalog.NewProvider(catalog.NewScyllaRepository())
	product.Catalog = provider
	user.Catalog = provider
	product.Notify = notify.NewTelegramSink()

	// Indexer le catalogue servi pour la recherche, sans bloquer le démarrage
	if database.Elastic != nil {
		go func() {
			products, _ := provider.Products(context.Background())
			for _, p := range products {
				catalog.IndexProduct(p)
			}
			log.Printf("🔍 %d produits indexés dans Elasticsearch", len(products))
		}()
	}

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Balajee Traders lancé sur le port", port)
	r.Run(":" + port)
}

func initOAuthProviders() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("⚠️ SESSION_SECRET manquant — OAuth désactivé")
		return
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if provider := req.URL.Query().Get("provider"); provider != "" {
			return provider, nil
		}
		if provider := req.FormValue("provider"); provider != "" {
			return provider, nil
		}
		return "", errors.New("provider not found")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if googleClientID == "" || googleClientSecret == "" {
		log.Println("⚠️ Aucun provider OAuth configuré")
		return
	}

	goth.UseProviders(google.New(
		googleClientID,
		googleClientSecret,
		baseURL+"/api/auth/google/callback",
	))
	log.Println("✅ Google OAuth activé")
}

// warmupRedisCache pré-chauffe le cache Redis pour éviter la latence du premier appel
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}
