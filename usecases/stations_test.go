package usecases

import (
	"testing"

	"station-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func validInput() CreateStationInput {
	return CreateStationInput{
		Name: "Pier 9",
		Location: LocationInput{
			Latitude:  f64(37.7),
			Longitude: f64(-122.4),
		},
		PowerOutput:   f64(50),
		ConnectorType: "CCS",
	}
}

func TestCreate_DefaultsAndOwner(t *testing.T) {
	t.Parallel()

	uc := NewStationUseCase(newFakeStationRepo())

	station, err := uc.Create("alice", validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, station.ID)
	assert.Equal(t, entities.StatusActive, station.Status)
	assert.Equal(t, "alice", station.OwnerID)

	got, err := uc.Get(station.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pier 9", got.Name)
	assert.Equal(t, 37.7, got.Location.Latitude)
	assert.Equal(t, -122.4, got.Location.Longitude)
	assert.Equal(t, 50.0, got.PowerOutput)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	uc := NewStationUseCase(newFakeStationRepo())

	in := validInput()
	in.PowerOutput = f64(-5)
	_, err := uc.Create("alice", in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.Name = ""
	_, err = uc.Create("alice", in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.Location.Latitude = nil
	_, err = uc.Create("alice", in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.Status = "Broken"
	_, err = uc.Create("alice", in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_PartialSemantics(t *testing.T) {
	t.Parallel()

	uc := NewStationUseCase(newFakeStationRepo())

	station, err := uc.Create("alice", validInput())
	require.NoError(t, err)

	// updating only status leaves everything else untouched
	updated, err := uc.Update(station.ID, "alice", UpdateStationInput{
		Status: str(entities.StatusMaintenance),
	})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusMaintenance, updated.Status)
	assert.Equal(t, "Pier 9", updated.Name)
	assert.Equal(t, 37.7, updated.Location.Latitude)
	assert.Equal(t, 50.0, updated.PowerOutput)
	assert.Equal(t, "CCS", updated.ConnectorType)
	assert.Equal(t, "alice", updated.OwnerID)
	assert.True(t, updated.UpdatedAt.After(station.UpdatedAt))
}

func TestUpdate_ZeroPowerOutputIsExplicit(t *testing.T) {
	t.Parallel()

	uc := NewStationUseCase(newFakeStationRepo())

	station, err := uc.Create("alice", validInput())
	require.NoError(t, err)

	updated, err := uc.Update(station.ID, "alice", UpdateStationInput{
		PowerOutput: f64(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.PowerOutput)

	_, err = uc.Update(station.ID, "alice", UpdateStationInput{
		PowerOutput: f64(-1),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_Ownership(t *testing.T) {
	t.Parallel()

	uc := NewStationUseCase(newFakeStationRepo())

	station, err := uc.Create("alice", validInput())
	require.NoError(t, err)

	_, err = uc.Update(station.ID, "bob", UpdateStationInput{Name: str("Hijacked")})
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := uc.Get(station.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pier 9", got.Name)

	// missing records report NotFound before any ownership consideration
	_, err = uc.Update("nope", "bob", UpdateStationInput{Name: str("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Ownership(t *testing.T) {
	t.Parallel()

	uc := NewStationUseCase(newFakeStationRepo())

	station, err := uc.Create("alice", validInput())
	require.NoError(t, err)

	err = uc.Delete(station.ID, "bob")
	assert.ErrorIs(t, err, ErrForbidden)

	// record still present after the forbidden attempt
	_, err = uc.Get(station.ID)
	require.NoError(t, err)

	err = uc.Delete(station.ID, "alice")
	require.NoError(t, err)

	_, err = uc.Get(station.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = uc.Delete(station.ID, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	t.Parallel()

	uc := NewStationUseCase(newFakeStationRepo())

	names := []string{"first", "second", "third"}
	for _, name := range names {
		in := validInput()
		in.Name = name
		_, err := uc.Create("alice", in)
		require.NoError(t, err)
	}

	stations, err := uc.List()
	require.NoError(t, err)
	require.Len(t, stations, 3)

	assert.Equal(t, "third", stations[0].Name)
	assert.Equal(t, "second", stations[1].Name)
	assert.Equal(t, "first", stations[2].Name)

	for i := 1; i < len(stations); i++ {
		assert.False(t, stations[i-1].CreatedAt.Before(stations[i].CreatedAt))
	}
}
