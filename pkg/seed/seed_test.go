package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emlakpark_backend/internal/model"
	"emlakpark_backend/internal/store"
	"emlakpark_backend/pkg/utils/password"
)

func intp(v int) *int { return &v }

func TestSeed_PopulatesStore(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, Seed(s, 12))

	assert.Len(t, s.ListCities(), 6)
	assert.Len(t, s.ListPropertyTypes(), 6)
	assert.Len(t, s.ListAgents(), 4)
	assert.Len(t, s.ListListings(store.ListingFilter{}), 13, "12 generated plus the showcase listing")

	admin, ok := s.GetUserByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.True(t, password.Verify("admin123", admin.Password))

	_, ok = s.GetSetting(model.SettingContactInfo)
	assert.True(t, ok)
	_, ok = s.GetSetting(model.SettingWorkingHours)
	assert.True(t, ok)
}

func TestSeed_ReferentialIntegrity(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, Seed(s, 24))

	for _, l := range s.ListListings(store.ListingFilter{}) {
		_, ok := s.GetCity(l.CityID)
		assert.True(t, ok, "listing %d references missing city %d", l.ID, l.CityID)
		_, ok = s.GetPropertyType(l.PropertyTypeID)
		assert.True(t, ok, "listing %d references missing property type %d", l.ID, l.PropertyTypeID)
		_, ok = s.GetUser(l.UserID)
		assert.True(t, ok, "listing %d references missing user %d", l.ID, l.UserID)

		assert.Positive(t, l.Price)
		assert.Positive(t, l.SquareMeters)
		assert.NotEmpty(t, l.ImageURLs)

		if l.ListingType == model.ListingTypeSell {
			assert.Nil(t, l.RentPeriod)
		} else {
			assert.NotNil(t, l.RentPeriod)
		}
	}
}

func TestSeed_ShowcaseListing(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, Seed(s, 8))

	results := s.ListListings(store.ListingFilter{
		ListingType: model.ListingTypeSell,
		MinPrice:    intp(1000000),
		MaxPrice:    intp(3000000),
		Search:      "Kadıköy",
	})
	require.NotEmpty(t, results)

	found := false
	for _, l := range results {
		if l.Price == 2000000 && l.SquareMeters == 100 {
			found = true
		}
	}
	assert.True(t, found, "the fixed showcase listing is always seeded")
}
