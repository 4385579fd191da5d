package port

import "github.com/ezekielbrioso/Florish/src/users/domain/entity"

// UserRepository persiste los usuarios de la tienda
type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
	Upsert(user *entity.User) (*entity.User, error)
}
