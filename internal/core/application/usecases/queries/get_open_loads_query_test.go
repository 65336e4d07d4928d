package queries_test

import (
	"testing"

	"loadboard/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOpenLoadsQuery_Valid(t *testing.T) {
	minPrice := int64(15000)

	q, err := queries.NewGetOpenLoadsQuery("  Mumbai ", "Pune", &minPrice)

	require.NoError(t, err)
	assert.Equal(t, "Mumbai", q.PickupCity())
	assert.Equal(t, "Pune", q.DropCity())
	require.NotNil(t, q.MinPrice())
	assert.Equal(t, int64(15000), *q.MinPrice())
	assert.NoError(t, q.Validate())
}

func TestNewGetOpenLoadsQuery_NoFilters(t *testing.T) {
	q, err := queries.NewGetOpenLoadsQuery("", "", nil)

	require.NoError(t, err)
	assert.Empty(t, q.PickupCity())
	assert.Empty(t, q.DropCity())
	assert.Nil(t, q.MinPrice())
}

func TestNewGetOpenLoadsQuery_NegativeMinPrice(t *testing.T) {
	minPrice := int64(-1)

	_, err := queries.NewGetOpenLoadsQuery("", "", &minPrice)

	assert.Error(t, err)
}

func TestGetOpenLoadsQuery_Validate_NotConstructed(t *testing.T) {
	var q queries.GetOpenLoadsQuery
	assert.ErrorIs(t, q.Validate(), queries.ErrGetOpenLoadsQueryIsNotConstructed)
}
