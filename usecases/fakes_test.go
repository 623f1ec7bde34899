package usecases

import (
	"sort"
	"time"

	"station-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repositories mimicking the GORM-backed ones, including the
// BeforeCreate hook behavior (generated IDs and timestamps).

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByHandle(handle string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Handle == handle {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeStationRepo struct {
	stations map[string]*entities.Station
	seq      int
}

func newFakeStationRepo() *fakeStationRepo {
	return &fakeStationRepo{stations: make(map[string]*entities.Station)}
}

func (r *fakeStationRepo) Create(station *entities.Station) error {
	if station.ID == "" {
		station.ID = uuid.New().String()
	}
	// strictly increasing creation times so ordering is observable
	r.seq++
	created := time.Unix(1700000000, 0).UTC().Add(time.Duration(r.seq) * time.Second)
	station.CreatedAt = created
	station.UpdatedAt = created
	cp := *station
	r.stations[station.ID] = &cp
	return nil
}

func (r *fakeStationRepo) GetByID(id string) (*entities.Station, error) {
	if s, ok := r.stations[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStationRepo) GetAll() ([]entities.Station, error) {
	out := make([]entities.Station, 0, len(r.stations))
	for _, s := range r.stations {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeStationRepo) Update(station *entities.Station) error {
	station.UpdatedAt = time.Now().UTC()
	cp := *station
	r.stations[station.ID] = &cp
	return nil
}

func (r *fakeStationRepo) Delete(id string) error {
	delete(r.stations, id)
	return nil
}
