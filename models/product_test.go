package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorListScan(t *testing.T) {
	raw := `[{"name":"Black","hex":"#000000"},{"name":"Sand","hex":"#d2b48c"}]`

	var fromBytes ColorList
	require.NoError(t, fromBytes.Scan([]byte(raw)))
	require.Len(t, fromBytes, 2)
	assert.Equal(t, "Black", fromBytes[0].Name)
	assert.Equal(t, "#d2b48c", fromBytes[1].Hex)

	// Some drivers hand jsonb back as a string.
	var fromString ColorList
	require.NoError(t, fromString.Scan(raw))
	assert.Equal(t, fromBytes, fromString)

	var fromNil ColorList
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	var bad ColorList
	assert.Error(t, bad.Scan(42))
}

func TestColorListValueNilIsEmptyArray(t *testing.T) {
	var l ColorList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v.([]byte)))
}

func TestWishlistContains(t *testing.T) {
	items := []WishlistItem{
		{ProductID: 1},
		{ProductID: 5},
	}
	assert.True(t, WishlistContains(items, 5))
	assert.False(t, WishlistContains(items, 2))
	assert.False(t, WishlistContains(nil, 1))
}
