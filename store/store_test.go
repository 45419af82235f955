package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanachitra/models"
)

func TestOpenWithRetryEmptyDSN(t *testing.T) {
	st, err := OpenWithRetry("", 3)
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestNullableFloat(t *testing.T) {
	assert.Nil(t, nullableFloat(nil))
	assert.Equal(t, 1.5, nullableFloat(models.Float(1.5)))
}

func TestNullableString(t *testing.T) {
	assert.Nil(t, nullableString(nil))
	assert.Equal(t, "Poor", nullableString(models.String("Poor")))
}
