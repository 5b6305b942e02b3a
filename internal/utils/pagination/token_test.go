package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/hecate-codex/asset_mgmt_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	createdAt := time.Date(2025, time.February, 3, 14, 15, 16, 123456789, time.UTC)
	id := "a2c5e9f1-0000-4d4d-8a8a-123456789abc"

	token := pagination.EncodeToken(createdAt, id)
	gotTime, gotID, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("no separator here"))
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|some-id"))
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}

func TestDateBasedToken_RoundTrip(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	token := pagination.EncodeDateBasedToken(date)
	got, err := pagination.DecodeDateBasedToken(token)

	require.NoError(t, err)
	assert.True(t, date.Equal(got))
}
