//go:build unit

package pgconv_test

import (
	"errors"
	"testing"

	"marketplace-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	d, err := pgconv.DateToPgtype("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", pgconv.DateFromPgtype(d))

	_, err = pgconv.DateToPgtype("14/03/2025")
	assert.Error(t, err)
	assert.Equal(t, "", pgconv.DateFromPgtype(pgtype.Date{}))
}

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.IntPtrFromPgtype(pgtype.Int4{}))
	rating := 4
	assert.Equal(t, &rating, pgconv.IntPtrFromPgtype(pgconv.IntPtrToPgtype(&rating)))

	assert.Nil(t, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(nil)))
	review := "great"
	assert.Equal(t, &review, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&review)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(errors.New("connection reset")))
}
