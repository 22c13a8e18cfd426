package user

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"balajee_back_end/internal/database"
	"balajee_back_end/internal/models"
	"balajee_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

// ================== AUTH LOCALE ==================

func CreateUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Email == "" || input.Password == "" || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom, email et mot de passe requis"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// email déjà pris ?
	var existingID gocql.UUID
	lookup := database.GetPreparedGetUserByEmail()
	if lookup == nil {
		// Scylla arrivée après le démarrage : requête ad hoc
		lookup = session.Query("SELECT user_id FROM users_by_email WHERE email = ?")
	}
	if err := lookup.Bind(input.Email).Scan(&existingID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	userID := uuid.New()
	now := time.Now()

	insertUser := database.GetPreparedInsertUser()
	if insertUser == nil {
		insertUser = session.Query(`INSERT INTO users (user_id, email, password, name, phone, role, provider, provider_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	}
	err = insertUser.Bind(gocql.UUID(userID), input.Email, hashedPassword, input.Name, input.Phone,
		"customer", "local", "", now, now).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	insertByEmail := database.GetPreparedInsertUserByEmail()
	if insertByEmail == nil {
		insertByEmail = session.Query("INSERT INTO users_by_email (email, user_id) VALUES (?, ?)")
	}
	if err := insertByEmail.Bind(input.Email, gocql.UUID(userID)).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	user := models.User{
		ID:       userID.String(),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     "customer",
		Provider: "local",
	}

	token, _ := utils.GenerateJWT(user)
	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   user.Role,
	})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var userID gocql.UUID
	lookup := database.GetPreparedGetUserByEmail()
	if lookup == nil {
		lookup = session.Query("SELECT user_id FROM users_by_email WHERE email = ?")
	}
	if err := lookup.Bind(input.Email).Scan(&userID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	var email, password, name, phone, role, provider, providerID string
	fetch := database.GetPreparedGetUserByID()
	if fetch == nil {
		fetch = session.Query(`SELECT email, password, name, phone, role, provider, provider_id
			FROM users WHERE user_id = ?`)
	}
	err = fetch.Bind(userID).Scan(&email, &password, &name, &phone, &role, &provider, &providerID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	user := models.User{
		ID:       userID.String(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Role:     role,
		Provider: provider,
	}

	token, _ := utils.GenerateJWT(user)
	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   user.Role,
	})
}

// Me retourne le profil du compte connecté
func Me(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id invalide"})
		return
	}

	var email, name, phone, role, provider string
	err = session.Query(`SELECT email, name, phone, role, provider FROM users WHERE user_id = ?`,
		gocql.UUID(uid)).Scan(&email, &name, &phone, &role, &provider)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":   userID,
		"email":    email,
		"name":     name,
		"phone":    phone,
		"role":     role,
		"provider": provider,
	})
}

// ================== AUTH SOCIALE (GOOGLE) ==================

func BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider != "google" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider non supporté"})
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	callbackURL := baseURL + "/api/auth/google/callback"

	goth.UseProviders(google.New(
		os.Getenv("GOOGLE_CLIENT_ID"),
		os.Getenv("GOOGLE_CLIENT_SECRET"),
		callbackURL,
	))

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	q.Set("state", generateRandomState())
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

func generateRandomState() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

func CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	if provider != "google" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètres OAuth invalides"})
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	data := url.Values{}
	data.Set("code", code)
	data.Set("client_id", os.Getenv("GOOGLE_CLIENT_ID"))
	data.Set("client_secret", os.Getenv("GOOGLE_CLIENT_SECRET"))
	data.Set("redirect_uri", baseURL+"/api/auth/google/callback")
	data.Set("grant_type", "authorization_code")

	resp, err := http.PostForm("https://oauth2.googleapis.com/token", data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur échange token Google"})
		return
	}
	defer resp.Body.Close()

	accessToken, err := decodeGoogleToken(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Réponse token Google invalide"})
		return
	}

	userResp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + url.QueryEscape(accessToken))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur profil Google"})
		return
	}
	defer userResp.Body.Close()

	gu, err := decodeGoogleProfile(userResp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Réponse profil Google invalide"})
		return
	}

	if gu.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Profil Google sans email"})
		return
	}

	user, err := findOrCreateOAuthUser("google", gu.ID, gu.Email, gu.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	token, _ := utils.GenerateJWT(user)

	frontURL := os.Getenv("FRONTEND_URL")
	if frontURL == "" {
		frontURL = "http://localhost:5173"
	}
	c.Redirect(http.StatusTemporaryRedirect, frontURL+"/auth/callback?token="+url.QueryEscape(token))
}

type googleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// decodeGoogleToken lit la réponse de l'échange de code. Google renvoie
// parfois une page d'erreur HTML : un corps illisible ou sans access_token
// doit remonter comme tel, pas comme un profil vide.
func decodeGoogleToken(body io.Reader) (string, error) {
	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("réponse token illisible: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("réponse token sans access_token")
	}
	return tokenResp.AccessToken, nil
}

func decodeGoogleProfile(body io.Reader) (googleProfile, error) {
	var gu googleProfile
	if err := json.NewDecoder(body).Decode(&gu); err != nil {
		return googleProfile{}, fmt.Errorf("profil Google illisible: %w", err)
	}
	return gu, nil
}

func findOrCreateOAuthUser(provider, providerID, email, name string) (models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return models.User{}, err
	}

	var userID gocql.UUID
	if err := session.Query("SELECT user_id FROM users_by_email WHERE email = ?", email).Scan(&userID); err == nil {
		var dbEmail, dbName, phone, role, dbProvider string
		var password, dbProviderID string
		err = session.Query(`SELECT email, password, name, phone, role, provider, provider_id
			FROM users WHERE user_id = ?`, userID).Scan(&dbEmail, &password, &dbName, &phone, &role, &dbProvider, &dbProviderID)
		if err == nil {
			return models.User{
				ID:       userID.String(),
				Name:     dbName,
				Email:    dbEmail,
				Phone:    phone,
				Role:     role,
				Provider: dbProvider,
			}, nil
		}
	}

	// Premier passage : création du compte
	newID := uuid.New()
	now := time.Now()

	err = session.Query(`INSERT INTO users (user_id, email, password, name, phone, role, provider, provider_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gocql.UUID(newID), email, "", name, "", "customer", provider, providerID, now, now).Exec()
	if err != nil {
		return models.User{}, err
	}
	if err := session.Query("INSERT INTO users_by_email (email, user_id) VALUES (?, ?)",
		email, gocql.UUID(newID)).Exec(); err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:       newID.String(),
		Name:     name,
		Email:    email,
		Role:     "customer",
		Provider: provider,
	}, nil
}
