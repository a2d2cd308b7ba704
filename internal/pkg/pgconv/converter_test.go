//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"fieldbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "800", "1250.50", "0.01"} {
		d := decimal.RequireFromString(s)
		got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
		require.NoError(t, err)
		assert.True(t, d.Equal(got), "want %s got %s", d, got)
	}

	_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Valid: false})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
}

func TestDateConversion(t *testing.T) {
	bkk := time.FixedZone("ICT", 7*60*60)
	in := time.Date(2025, 3, 9, 23, 30, 0, 0, bkk)

	pd := pgconv.DateToPgtype(in)
	assert.True(t, pd.Valid)
	assert.Equal(t, 9, pd.Time.Day())

	out := pgconv.DateFromPgtype(pd, bkk)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, bkk), out)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}

func TestTextOrNull(t *testing.T) {
	assert.Equal(t, pgtype.Text{String: "smtp down", Valid: true}, pgconv.TextOrNull("smtp down"))
	assert.False(t, pgconv.TextOrNull("").Valid)
}
