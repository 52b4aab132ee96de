package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_LastModified_FallsBack(t *testing.T) {
	assert.Equal(t, int64(200), Note{CreatedAt: 100, UpdatedAt: 200}.LastModified())
	assert.Equal(t, int64(100), Note{CreatedAt: 100}.LastModified())
	assert.Equal(t, int64(0), Note{}.LastModified())
}

func TestNote_JSONFieldNamesAreStable(t *testing.T) {
	n := Note{
		ID:        "n1",
		Title:     "Shopping",
		Body:      "milk",
		ImageURI:  "/data/images/alice_x.jpg",
		CreatedAt: 100,
		UpdatedAt: 200,
	}

	b, err := json.Marshal(n)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, field := range []string{"id", "title", "body", "imageUri", "createdAt", "updatedAt"} {
		assert.Contains(t, raw, field)
	}
}

func TestNote_DecodesNullImageURI(t *testing.T) {
	// Blobs written by earlier versions store imageUri as JSON null.
	var n Note
	require.NoError(t, json.Unmarshal([]byte(`{"id":"n1","imageUri":null}`), &n))
	assert.Equal(t, "", n.ImageURI)
}
