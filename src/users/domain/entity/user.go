package entity

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmailRequired = errors.New("user email is required")
	ErrNameRequired  = errors.New("user name is required")
	ErrUserNotFound  = errors.New("user not found")
)

// User representa un cliente de la tienda
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

// NewUser crea un nuevo usuario validando los datos
func NewUser(email, name, imageURL string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	now := time.Now()
	return &User{
		Email:     email,
		Name:      name,
		ImageURL:  imageURL,
		CreatedAt: now,
		LastLogin: now,
	}, nil
}
