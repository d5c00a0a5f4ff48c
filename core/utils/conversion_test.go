package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "12345", ToString(float64(12345)))
	assert.Equal(t, "1.5", ToString(1.5))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "7", ToString(7))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(float64(1)))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool([]byte("1")))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(nil))
}

func TestStringField(t *testing.T) {
	data := map[string]any{
		"title": "Cola",
		"empty": "",
		"null":  nil,
		"num":   float64(42),
	}

	require.NotNil(t, StringField(data, "title"))
	assert.Equal(t, "Cola", *StringField(data, "title"))

	require.NotNil(t, StringField(data, "empty"))
	assert.Equal(t, "", *StringField(data, "empty"))

	assert.Nil(t, StringField(data, "null"))
	assert.Nil(t, StringField(data, "missing"))
	assert.Nil(t, StringField(data, ""))
	assert.Equal(t, "42", *StringField(data, "num"))
}

func TestBoolField(t *testing.T) {
	v, ok := BoolField(map[string]any{"success": false}, "success")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = BoolField(map[string]any{}, "success")
	assert.False(t, ok)
}

func TestObjectField(t *testing.T) {
	data := map[string]any{"error": map[string]any{"message": "x"}, "flat": "y"}
	assert.Equal(t, "x", ObjectField(data, "error")["message"])
	assert.Nil(t, ObjectField(data, "flat"))
}
