package repositories

import (
	"time"

	"station-server/db"
	"station-server/entities"
)

type stationPgRepository struct {
	db db.Database
}

func NewStationPgRepository(database db.Database) StationRepository {
	return &stationPgRepository{db: database}
}

func (r *stationPgRepository) Create(station *entities.Station) error {
	return r.db.GetDB().Create(station).Error
}

func (r *stationPgRepository) GetByID(id string) (*entities.Station, error) {
	var station entities.Station
	err := r.db.GetDB().Where("id = ?", id).First(&station).Error
	if err != nil {
		return nil, err
	}
	return &station, nil
}

// GetAll returns every station, newest first.
func (r *stationPgRepository) GetAll() ([]entities.Station, error) {
	var stations []entities.Station
	err := r.db.GetDB().Order("created_at DESC").Find(&stations).Error
	return stations, err
}

func (r *stationPgRepository) Update(station *entities.Station) error {
	station.UpdatedAt = time.Now().UTC()
	return r.db.GetDB().Save(station).Error
}

func (r *stationPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Station{}).Error
}
