package services_test

import (
	"testing"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDrivers(t *testing.T, n int) []*profile.Profile {
	t.Helper()
	drivers := make([]*profile.Profile, 0, n)
	for i := 0; i < n; i++ {
		p, err := profile.NewProfile(kernel.NewUUID(), "Driver", "",
			kernel.NewUUID().String()+"@example.com", "secret-password", profile.RoleDriver)
		require.NoError(t, err)
		drivers = append(drivers, p)
	}
	return drivers
}

func TestRandomMatcher_Match(t *testing.T) {
	matcher := services.NewRandomMatcher()

	t.Run("returns_between_two_and_four_drivers", func(t *testing.T) {
		drivers := makeDrivers(t, 10)

		for i := 0; i < 50; i++ {
			matched := matcher.Match(nil, drivers)
			assert.GreaterOrEqual(t, len(matched), 2)
			assert.LessOrEqual(t, len(matched), 4)
		}
	})

	t.Run("returned_drivers_come_from_candidates", func(t *testing.T) {
		drivers := makeDrivers(t, 5)
		byID := make(map[string]bool, len(drivers))
		for _, d := range drivers {
			byID[d.ID().String()] = true
		}

		for _, m := range matcher.Match(nil, drivers) {
			assert.True(t, byID[m.ID().String()])
		}
	})

	t.Run("fewer_candidates_than_minimum", func(t *testing.T) {
		drivers := makeDrivers(t, 1)

		matched := matcher.Match(nil, drivers)

		assert.Len(t, matched, 1)
	})

	t.Run("no_candidates_is_not_an_error", func(t *testing.T) {
		assert.Empty(t, matcher.Match(nil, nil))
	})

	t.Run("does_not_mutate_candidate_slice", func(t *testing.T) {
		drivers := makeDrivers(t, 6)
		original := make([]*profile.Profile, len(drivers))
		copy(original, drivers)

		matcher.Match(nil, drivers)

		assert.Equal(t, original, drivers)
	})
}
