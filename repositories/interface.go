package repositories

import "station-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByHandle(handle string) (*entities.User, error)
}

type StationRepository interface {
	Create(station *entities.Station) error
	GetByID(id string) (*entities.Station, error)
	GetAll() ([]entities.Station, error)
	Update(station *entities.Station) error
	Delete(id string) error
}
