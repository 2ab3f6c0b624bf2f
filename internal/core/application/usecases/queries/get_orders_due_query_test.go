package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/pkg/errs"
)

func TestNewGetOrdersDueQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersDueQuery(time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), query.Day())
}

func TestNewGetOrdersDueQuery_ZeroDay(t *testing.T) {
	_, err := queries.NewGetOrdersDueQuery(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrdersDueQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersDueQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersDueQueryIsNotConstructed)
}
