//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCursor(t *testing.T) {
	at := time.Date(2030, 10, 1, 9, 30, 15, 123456789, time.UTC)
	id := uuid.Must(uuid.NewV7())

	t.Run("truncates to microseconds", func(t *testing.T) {
		gotAt, gotID, err := queries.DecodeHistoryCursor(queries.EncodeHistoryCursor(at, id))
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, at.Truncate(time.Microsecond), gotAt)
	})

	invalid := map[string]string{
		"empty":          "",
		"not base64":     "%%%",
		"wrong prefix":   base64.RawURLEncoding.EncodeToString([]byte("v1.1.abc")),
		"bad timestamp":  base64.RawURLEncoding.EncodeToString([]byte("h1.soon." + id.String())),
		"bad event id":   base64.RawURLEncoding.EncodeToString([]byte("h1.1700000000000000.nope")),
		"too many parts": base64.RawURLEncoding.EncodeToString([]byte("h1.1.2." + id.String())),
	}
	for name, cursor := range invalid {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeHistoryCursor(cursor)
			require.Error(t, err)
			assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ClampLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ClampLimit(-5))
	assert.Equal(t, 7, queries.ClampLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ClampLimit(queries.MaxListLimit+1))
}
