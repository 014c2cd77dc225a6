package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstJSONObject(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		got, ok := FirstJSONObject(`{"name":"X"}`)
		assert.True(t, ok)
		assert.Equal(t, `{"name":"X"}`, got)
	})

	t.Run("wrapped in prose and fences", func(t *testing.T) {
		raw := "Sure! Here is the JSON:\n```json\n{\"personalInfo\":{\"name\":\"X\"}}\n```\nLet me know if you need anything else."
		got, ok := FirstJSONObject(raw)
		assert.True(t, ok)
		assert.Equal(t, `{"personalInfo":{"name":"X"}}`, got)
	})

	t.Run("trailing brace in prose does not extend the span", func(t *testing.T) {
		raw := `prefix {"a":{"b":1}} trailing }`
		got, ok := FirstJSONObject(raw)
		assert.True(t, ok)
		assert.Equal(t, `{"a":{"b":1}}`, got)
	})

	t.Run("braces inside strings are ignored", func(t *testing.T) {
		raw := `{"bio":"loves {curly} braces \" and quotes"} rest`
		got, ok := FirstJSONObject(raw)
		assert.True(t, ok)
		assert.Equal(t, `{"bio":"loves {curly} braces \" and quotes"}`, got)
	})

	t.Run("no object", func(t *testing.T) {
		_, ok := FirstJSONObject("the model refused to answer")
		assert.False(t, ok)
	})

	t.Run("unbalanced object", func(t *testing.T) {
		_, ok := FirstJSONObject(`{"name":"X"`)
		assert.False(t, ok)
	})
}
