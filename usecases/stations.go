package usecases

import (
	"errors"
	"fmt"

	"station-server/entities"
	"station-server/repositories"

	"gorm.io/gorm"
)

// LocationInput carries a station position. Latitude and longitude are
// pointers so "missing" and "zero" stay distinguishable.
type LocationInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

// CreateStationInput is the payload for creating a station. Any owner
// supplied by the client is ignored; ownership always comes from the
// authenticated caller.
type CreateStationInput struct {
	Name          string        `json:"name"`
	Location      LocationInput `json:"location"`
	Status        string        `json:"status"`
	PowerOutput   *float64      `json:"powerOutput"`
	ConnectorType string        `json:"connectorType"`
}

// UpdateStationInput is a partial update; nil fields are left untouched.
// A present zero (e.g. powerOutput: 0) is applied as-is.
type UpdateStationInput struct {
	Name          *string        `json:"name"`
	Location      *LocationInput `json:"location"`
	Status        *string        `json:"status"`
	PowerOutput   *float64       `json:"powerOutput"`
	ConnectorType *string        `json:"connectorType"`
}

type StationUseCase struct {
	Stations repositories.StationRepository
}

func NewStationUseCase(stations repositories.StationRepository) *StationUseCase {
	return &StationUseCase{Stations: stations}
}

// List returns all stations, newest first.
func (uc *StationUseCase) List() ([]entities.Station, error) {
	return uc.Stations.GetAll()
}

// Get retrieves a station by ID.
func (uc *StationUseCase) Get(id string) (*entities.Station, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: station id is required", ErrValidation)
	}
	station, err := uc.Stations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return station, nil
}

// Create validates the input and persists a new station owned by ownerID.
func (uc *StationUseCase) Create(ownerID string, input CreateStationInput) (*entities.Station, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.ConnectorType == "" {
		return nil, fmt.Errorf("%w: connectorType is required", ErrValidation)
	}
	if input.Location.Latitude == nil || input.Location.Longitude == nil {
		return nil, fmt.Errorf("%w: location latitude and longitude are required", ErrValidation)
	}
	if input.PowerOutput == nil {
		return nil, fmt.Errorf("%w: powerOutput is required", ErrValidation)
	}
	if *input.PowerOutput < 0 {
		return nil, fmt.Errorf("%w: powerOutput must be >= 0", ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = entities.StatusActive
	}
	if !entities.ValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, input.Status)
	}

	station := &entities.Station{
		Name: input.Name,
		Location: entities.Location{
			Latitude:  *input.Location.Latitude,
			Longitude: *input.Location.Longitude,
			Address:   input.Location.Address,
		},
		Status:        status,
		PowerOutput:   *input.PowerOutput,
		ConnectorType: input.ConnectorType,
		OwnerID:       ownerID,
	}

	if err := uc.Stations.Create(station); err != nil {
		return nil, err
	}
	return station, nil
}

// Update applies a partial update on behalf of callerID. The existence
// check always runs before the ownership check so a non-owner learns
// nothing more than any unauthenticated caller could.
func (uc *StationUseCase) Update(id, callerID string, input UpdateStationInput) (*entities.Station, error) {
	station, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	if station.OwnerID != callerID {
		return nil, ErrForbidden
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		station.Name = *input.Name
	}
	if input.Location != nil {
		if input.Location.Latitude == nil || input.Location.Longitude == nil {
			return nil, fmt.Errorf("%w: location latitude and longitude are required", ErrValidation)
		}
		station.Location = entities.Location{
			Latitude:  *input.Location.Latitude,
			Longitude: *input.Location.Longitude,
			Address:   input.Location.Address,
		}
	}
	if input.Status != nil {
		if !entities.ValidStatus(*input.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *input.Status)
		}
		station.Status = *input.Status
	}
	if input.PowerOutput != nil {
		if *input.PowerOutput < 0 {
			return nil, fmt.Errorf("%w: powerOutput must be >= 0", ErrValidation)
		}
		station.PowerOutput = *input.PowerOutput
	}
	if input.ConnectorType != nil {
		if *input.ConnectorType == "" {
			return nil, fmt.Errorf("%w: connectorType cannot be empty", ErrValidation)
		}
		station.ConnectorType = *input.ConnectorType
	}

	if err := uc.Stations.Update(station); err != nil {
		return nil, err
	}
	return station, nil
}

// Delete removes a station on behalf of callerID, with the same
// existence-then-ownership ordering as Update.
func (uc *StationUseCase) Delete(id, callerID string) error {
	station, err := uc.Get(id)
	if err != nil {
		return err
	}
	if station.OwnerID != callerID {
		return ErrForbidden
	}
	return uc.Stations.Delete(id)
}
