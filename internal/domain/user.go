package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um usuário do dashboard de suporte, armazenado na coleção
// dashboardUsers. O acesso por chave compartilhada foi substituído por
// credenciais individuais.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Active       bool      `json:"active" bson:"active"`
	RoleID       int       `json:"role_id" bson:"roleId"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updatedAt"`
}

type Claims struct {
	UserID     string
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
