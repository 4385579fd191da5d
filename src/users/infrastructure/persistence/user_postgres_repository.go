package persistence

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ezekielbrioso/Florish/src/users/domain/entity"
)

// UserPostgresRepository implementa UserRepository con PostgreSQL
type UserPostgresRepository struct {
	db *sql.DB
}

// NewUserPostgresRepository crea una nueva instancia del repositorio
func NewUserPostgresRepository(db *sql.DB) *UserPostgresRepository {
	return &UserPostgresRepository{db: db}
}

const userColumns = `id, email, name, COALESCE(image_url, ''), is_admin, created_at, last_login`

// FindByEmail busca un usuario por su email
func (r *UserPostgresRepository) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user := &entity.User{}
	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.ImageURL,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.LastLogin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Upsert inserta el usuario o actualiza nombre, imagen y último login si ya existe
func (r *UserPostgresRepository) Upsert(user *entity.User) (*entity.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.LastLogin = time.Now()

	query := `
		INSERT INTO users (id, email, name, image_url, is_admin, created_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name,
		    image_url = EXCLUDED.image_url,
		    last_login = EXCLUDED.last_login
		RETURNING ` + userColumns

	saved := &entity.User{}
	err := r.db.QueryRow(query,
		user.ID,
		user.Email,
		user.Name,
		user.ImageURL,
		user.IsAdmin,
		user.CreatedAt,
		user.LastLogin,
	).Scan(
		&saved.ID,
		&saved.Email,
		&saved.Name,
		&saved.ImageURL,
		&saved.IsAdmin,
		&saved.CreatedAt,
		&saved.LastLogin,
	)
	if err != nil {
		return nil, err
	}

	return saved, nil
}
