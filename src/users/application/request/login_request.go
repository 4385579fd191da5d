package request

// LoginRequest registra o actualiza un usuario al iniciar sesión
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url,omitempty"`
}
