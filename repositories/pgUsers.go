package repositories

import (
	"station-server/db"
	"station-server/entities"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userPgRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByHandle(handle string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("handle = ?", handle).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
