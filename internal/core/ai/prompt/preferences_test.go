package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPreferences(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Something quick and easy please", []string{"quick", "easy"}},
		{"A healthy VEGAN dinner", []string{"vegan", "healthy"}},
		{"resep sehat yang pedas dan gurih", []string{"healthy", "spicy", "savory"}},
		{"masakan nabati yang cepat dan mudah", []string{"vegetarian", "quick", "easy"}},
		{"fast, quick, cepat", []string{"quick"}},
		{"just dinner", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPreferences(tt.text))
		})
	}
}

func TestIsRecipeRequest(t *testing.T) {
	assert.True(t, IsRecipeRequest("Can you give me a recipe?"))
	assert.True(t, IsRecipeRequest("What should I COOK tonight"))
	assert.True(t, IsRecipeRequest("tolong buatkan sesuatu"))
	assert.True(t, IsRecipeRequest("mau masak apa"))
	assert.False(t, IsRecipeRequest("How long do eggs keep?"))
}
