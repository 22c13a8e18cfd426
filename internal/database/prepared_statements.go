package database

import (
	"log"
	"sync"

	"github.com/gocql/gocql"
)

// Requêtes chaudes du parcours compte : gocql prépare et met en cache chaque
// statement à la première exécution, les accesseurs rendent une query neuve à
// chaque appel (une *gocql.Query ne se partage pas entre goroutines)
const (
	queryGetUserByEmail = "SELECT user_id FROM users_by_email WHERE email = ?"
	queryGetUserByID    = `SELECT email, password, name, phone, role, provider, provider_id
		FROM users WHERE user_id = ?`
	queryInsertUser = `INSERT INTO users (user_id, email, password, name, phone, role, provider, provider_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	queryInsertUserByEmail = "INSERT INTO users_by_email (email, user_id) VALUES (?, ?)"
)

var (
	preparedSession *gocql.Session
	preparedOnce    sync.Once
)

// InitPreparedStatements épingle la session users et pré-chauffe le cache de
// prepared statements de gocql
func InitPreparedStatements() {
	preparedOnce.Do(func() {
		session, err := GetUsersSession()
		if err != nil {
			log.Printf("⚠️ Impossible d'initialiser les prepared statements: %v", err)
			return
		}
		preparedSession = session

		// Une exécution à vide par statement suffit à le faire préparer
		var warm gocql.UUID
		session.Query(queryGetUserByEmail, "").Scan(&warm)

		log.Println("✅ Prepared statements initialisés")
	})
}

func GetPreparedGetUserByEmail() *gocql.Query {
	if preparedSession == nil {
		return nil
	}
	return preparedSession.Query(queryGetUserByEmail)
}

func GetPreparedGetUserByID() *gocql.Query {
	if preparedSession == nil {
		return nil
	}
	return preparedSession.Query(queryGetUserByID)
}

func GetPreparedInsertUser() *gocql.Query {
	if preparedSession == nil {
		return nil
	}
	return preparedSession.Query(queryInsertUser)
}

func GetPreparedInsertUserByEmail() *gocql.Query {
	if preparedSession == nil {
		return nil
	}
	return preparedSession.Query(queryInsertUserByEmail)
}
