package session_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/region"
	"github.com/android-4dsoft/yettel/internal/selection"
	"github.com/android-4dsoft/yettel/internal/session"
)

func TestRegistry_CreateGetDelete(t *testing.T) {
	r := session.NewRegistry(region.Hungary())

	s := r.Create()
	require.NotEqual(t, uuid.Nil, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, r.Delete(s.ID))
	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.Delete(s.ID), domain.ErrNotFound)
}

func TestRegistry_SessionsAreIndependent(t *testing.T) {
	r := session.NewRegistry(region.Hungary())
	a, b := r.Create(), r.Create()

	a.Do(func(st *selection.Store) { st.SelectRegion("11") })

	assert.Equal(t, domain.RegionSelection{RegionIDs: []domain.RegionID{"11"}}, a.Snapshot())
	assert.Equal(t, domain.EmptySelection{}, b.Snapshot())
}

func TestSession_VehicleCachedOnce(t *testing.T) {
	s := session.NewRegistry(region.Hungary()).Create()

	_, ok := s.Vehicle()
	assert.False(t, ok)

	first := s.SetVehicle(domain.Vehicle{Plate: "ABC 123"})
	second := s.SetVehicle(domain.Vehicle{Plate: "XYZ 999"})

	assert.Equal(t, "ABC 123", first.Plate)
	assert.Equal(t, "ABC 123", second.Plate)
	v, ok := s.Vehicle()
	require.True(t, ok)
	assert.Equal(t, "ABC 123", v.Plate)
}

// Each Do toggles the same region twice, so any interleaving of whole calls
// ends with the empty selection.
func TestSession_DoSerialisesMutation(t *testing.T) {
	s := session.NewRegistry(region.Hungary()).Create()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Do(func(st *selection.Store) {
				st.SelectRegion("23")
				st.SelectRegion("23")
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, domain.EmptySelection{}, s.Snapshot())
}
