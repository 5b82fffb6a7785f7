package translation

import (
	"testing"

	"kitchen-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		lang common.Language
		want string
	}{
		{"exact plural", "Tomatoes", common.Indonesian, "tomat"},
		{"indonesian to english", "bawang putih", common.English, "garlic"},
		{"unknown passthrough", "unknown-ingredient-xyz", common.Indonesian, "unknown-ingredient-xyz"},
		{"case insensitive", "CHICKEN", common.Indonesian, "ayam"},
		{"same language", "garlic", common.English, "garlic"},
		{"containment", "chicken breast", common.Indonesian, "ayam"},
		{"earlier entry wins", "organic rice flour", common.Indonesian, "beras"},
		{"plain substring", "garlicky butter", common.Indonesian, "bawang putih"},
		{"input inside a term", "tom", common.Indonesian, "tomat"},
		{"exact beats containment", "rice flour", common.Indonesian, "tepung beras"},
		{"indonesian containment", "tahu goreng", common.English, "tofu"},
		{"empty", "", common.English, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.in, tt.lang))
		})
	}
}

func TestTranslateCategory(t *testing.T) {
	assert.Equal(t, "Sayuran", TranslateCategory("vegetables", common.Indonesian))
	assert.Equal(t, "Vegetables", TranslateCategory("Sayuran", common.English))
	assert.Equal(t, "Makanan Laut", TranslateCategory("SEAFOOD", common.Indonesian))
	assert.Equal(t, "Snacks", TranslateCategory("Snacks", common.Indonesian))
	assert.Equal(t, "Vegetables", TranslateCategory("sayur", common.English))
}

func TestTranslateUnit(t *testing.T) {
	assert.Equal(t, "sendok makan", TranslateUnit("tbsp", common.Indonesian))
	assert.Equal(t, "cups", TranslateUnit("gelas", common.English))
	assert.Equal(t, "buah", TranslateUnit("Pieces", common.Indonesian))
	// no containment for units
	assert.Equal(t, "big cans", TranslateUnit("big cans", common.Indonesian))
}

func TestBilingual(t *testing.T) {
	en, id := Bilingual("telur")
	assert.Equal(t, "egg", en)
	assert.Equal(t, "telur", id)

	en, id = Bilingual("Dragon Fruit")
	assert.Equal(t, "Dragon Fruit", en)
	assert.Equal(t, "Dragon Fruit", id)
}

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, "dairy", CategoryKey("Produk Susu"))
	assert.Equal(t, "other", CategoryKey("mystery"))
	assert.Equal(t, "other", CategoryKey(""))
}
