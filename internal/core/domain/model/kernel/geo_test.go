package kernel_test

import (
	"testing"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("creates_valid_point", func(t *testing.T) {
		pt, err := kernel.NewGeoPoint(18.5204, 73.8567)

		require.NoError(t, err)
		require.NoError(t, pt.Validate())
		assert.InDelta(t, 18.5204, pt.Latitude(), 1e-9)
		assert.InDelta(t, 73.8567, pt.Longitude(), 1e-9)
	})

	t.Run("accepts_boundary_values", func(t *testing.T) {
		for _, pair := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}} {
			pt, err := kernel.NewGeoPoint(pair[0], pair[1])

			require.NoError(t, err)
			require.NoError(t, pt.Validate())
		}
	})

	t.Run("rejects_latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("rejects_longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var pt kernel.GeoPoint

		require.ErrorIs(t, pt.Validate(), errs.ErrValueIsRequired)
	})
}

func TestGeoPoint_String(t *testing.T) {
	pt, err := kernel.NewGeoPoint(18.5204, 73.8567)
	require.NoError(t, err)

	assert.Equal(t, "18.520400,73.856700", pt.String())
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal_points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(10, 20)
		b, _ := kernel.NewGeoPoint(10, 20)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different_points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(10, 20)
		b, _ := kernel.NewGeoPoint(10, 21)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed_point_fails", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(10, 20)
		var b kernel.GeoPoint

		_, err := a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestNewLocation(t *testing.T) {
	t.Run("creates_location_with_city_only", func(t *testing.T) {
		loc, err := kernel.NewLocation("Pune", nil)

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.Equal(t, "Pune", loc.City())
		assert.Nil(t, loc.Point())
		assert.Equal(t, "Pune", loc.String())
	})

	t.Run("creates_location_with_coordinates", func(t *testing.T) {
		pt, _ := kernel.NewGeoPoint(19.076, 72.8777)

		loc, err := kernel.NewLocation("Mumbai", &pt)

		require.NoError(t, err)
		require.NotNil(t, loc.Point())
		assert.Contains(t, loc.String(), "Mumbai (")
	})

	t.Run("trims_city_whitespace", func(t *testing.T) {
		loc, err := kernel.NewLocation("  Nagpur  ", nil)

		require.NoError(t, err)
		assert.Equal(t, "Nagpur", loc.City())
	})

	t.Run("rejects_blank_city", func(t *testing.T) {
		_, err := kernel.NewLocation("   ", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unconstructed_point", func(t *testing.T) {
		var pt kernel.GeoPoint

		_, err := kernel.NewLocation("Pune", &pt)

		require.Error(t, err)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var loc kernel.Location

		require.ErrorIs(t, loc.Validate(), errs.ErrValueIsRequired)
	})
}
