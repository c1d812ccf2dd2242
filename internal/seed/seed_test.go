package seed

import (
	"testing"

	"github.com/picklebay/picklebay/internal/service"
	"github.com/picklebay/picklebay/internal/storage"
	"github.com/picklebay/picklebay/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnce(t *testing.T) {
	ds := store.NewDataStore(storage.NewMemory())
	venues := service.NewVenueService(ds)

	require.NoError(t, Once(ds, venues))

	assert.Len(t, ds.Cities(), 3)
	assert.Len(t, ds.Venues(), 3)
	assert.NotEmpty(t, ds.Slots())
	assert.True(t, ds.Seeded())

	events := ds.Events()
	require.Len(t, events, 2)
	for _, event := range events {
		venue, ok := ds.VenueByID(event.VenueID)
		require.True(t, ok, "event %q must point at a seeded venue", event.Name)
		assert.Equal(t, venue.CityID, event.CityID)
		assert.True(t, event.StartDate.After(event.RegistrationDeadline))
	}
}

func TestOnceIsIdempotent(t *testing.T) {
	ds := store.NewDataStore(storage.NewMemory())
	venues := service.NewVenueService(ds)

	require.NoError(t, Once(ds, venues))
	seededVenues := ds.Venues()
	seededSlots := len(ds.Slots())

	require.NoError(t, Once(ds, venues))
	assert.Equal(t, seededVenues, ds.Venues(), "a second run must not reseed")
	assert.Equal(t, seededSlots, len(ds.Slots()))
}
