package usecase

import (
	"log"
	"os"
	"strings"

	"github.com/ezekielbrioso/Florish/src/users/application/request"
	"github.com/ezekielbrioso/Florish/src/users/domain/entity"
	"github.com/ezekielbrioso/Florish/src/users/domain/port"
)

// LoginUserUseCase registra al usuario en su primer login y lo actualiza en los siguientes
type LoginUserUseCase struct {
	userRepo port.UserRepository
}

// NewLoginUserUseCase crea una nueva instancia del caso de uso
func NewLoginUserUseCase(userRepo port.UserRepository) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
	}
}

// Execute hace upsert del usuario por email
func (uc *LoginUserUseCase) Execute(req *request.LoginRequest) (*entity.User, error) {
	user, err := entity.NewUser(req.Email, req.Name, req.ImageURL)
	if err != nil {
		return nil, err
	}

	adminEmail := strings.TrimSpace(strings.ToLower(os.Getenv("ADMIN_EMAIL")))
	user.IsAdmin = adminEmail != "" && user.Email == adminEmail

	saved, err := uc.userRepo.Upsert(user)
	if err != nil {
		log.Printf("❌ Error upserting user %s: %v", user.Email, err)
		return nil, err
	}

	log.Printf("✅ User logged in: %s", saved.Email)
	return saved, nil
}
