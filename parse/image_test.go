package parse_test

import (
	"testing"

	"github.com/kattlog/kattlog/parse"
	"github.com/stretchr/testify/assert"
)

func TestValidImageURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts plausible product photo URLs", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parse.ValidImageURL("https://cdn.example.com/products/sofa-verde-01.jpg", "Sofá verde"))
	})

	t.Run("rejects data URIs", func(t *testing.T) {
		t.Parallel()
		assert.False(t, parse.ValidImageURL("data:image/gif;base64,R0lGODlhAQABAAAAACw=", ""))
	})

	t.Run("rejects short URLs", func(t *testing.T) {
		t.Parallel()
		assert.False(t, parse.ValidImageURL("/img/1.jpg", ""))
	})

	t.Run("rejects denylist tokens in the path", func(t *testing.T) {
		t.Parallel()
		assert.False(t, parse.ValidImageURL("https://cdn.example.com/assets/logo-header.png", ""))
		assert.False(t, parse.ValidImageURL("https://cdn.example.com/img/fsc-certified.png", ""))
		assert.False(t, parse.ValidImageURL("https://cdn.example.com/img/rating-4-stars.svg", ""))
	})

	t.Run("rejects denylist tokens in alt text", func(t *testing.T) {
		t.Parallel()
		assert.False(t, parse.ValidImageURL("https://cdn.example.com/img/a1b2c3d4e5.png", "placeholder image"))
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()
		assert.False(t, parse.ValidImageURL("", "alt text"))
	})
}

func TestImageTokenPenalty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1000, parse.ImageTokenPenalty("https://cdn.example.com/brand-logo.png", ""))
	assert.Equal(t, -600, parse.ImageTokenPenalty("https://cdn.example.com/fsc-label.png", ""))
	assert.Equal(t, -200, parse.ImageTokenPenalty("https://cdn.example.com/review.png", "five stars"))
	assert.Equal(t, 0, parse.ImageTokenPenalty("https://cdn.example.com/products/mesa.jpg", "Mesa de centro"))
}
