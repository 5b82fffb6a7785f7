package prompt

import (
	"strings"
	"testing"

	"kitchen-assistant/internal/core/ai"
	"kitchen-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBuildRecipePromptEnglish(t *testing.T) {
	got := BuildRecipePrompt(common.RecipeRequest{
		Ingredients: []string{"chicken", "rice"},
		Difficulty:  common.DifficultyEasy,
		CookingTime: intPtr(30),
		Language:    common.English,
	})

	assert.True(t, strings.HasPrefix(got, "Create a unique and creative recipe using these ingredients: chicken, rice."))
	assert.Contains(t, got, "- Difficulty: easy\n")
	assert.Contains(t, got, "- Maximum cooking time: 30 minutes\n")
	assert.Contains(t, got, "Return the recipe in this exact JSON format:")
	assert.Contains(t, got, `"title": "Recipe Name"`)
	assert.Contains(t, got, `"ingredients": ["ingredient 1 with amount", "ingredient 2 with amount"]`)
	assert.Contains(t, got, "IMPORTANT: Provide ALL content in natural English.")
	assert.True(t, strings.HasSuffix(got, "Include interesting flavor combinations and techniques."))

	assert.NotContains(t, got, "Cuisine style")
	assert.NotContains(t, got, "Preferences")
	assert.NotContains(t, got, "Mood/Style")
}

func TestBuildRecipePromptIndonesian(t *testing.T) {
	got := BuildRecipePrompt(common.RecipeRequest{
		Ingredients: []string{"tahu", "tempe"},
		Preferences: []string{"spicy"},
		Cuisine:     "Padang",
		Mood:        "comfort food",
		Language:    common.Indonesian,
	})

	assert.True(t, strings.HasPrefix(got, "Buat resep unik dan kreatif menggunakan bahan-bahan ini: tahu, tempe."))
	assert.Contains(t, got, "Persyaratan:\n- Tingkat kesulitan: medium\n")
	assert.Contains(t, got, "- Gaya masakan: Padang\n")
	assert.Contains(t, got, "- Preferensi: spicy\n")
	assert.Contains(t, got, "- Suasana/Gaya: comfort food\n")
	assert.Contains(t, got, `"title": "Nama Resep"`)
	assert.Contains(t, got, `"instructions": ["langkah 1", "langkah 2", "langkah 3"]`)
	assert.Contains(t, got, "PENTING: Berikan SEMUA konten dalam Bahasa Indonesia")
	assert.NotContains(t, got, "Waktu memasak maksimum")
}

func TestBuildRecipePromptHasNoEmptyRequirementLines(t *testing.T) {
	got := BuildRecipePrompt(common.RecipeRequest{Ingredients: []string{"egg"}})
	for _, line := range strings.Split(got, "\n") {
		assert.NotEqual(t, "- ", line)
		assert.NotEqual(t, "-", strings.TrimSpace(line))
	}
}

func TestBuildRecipePromptListsAllSetRequirements(t *testing.T) {
	got := BuildRecipePrompt(common.RecipeRequest{
		Ingredients:         []string{"beef"},
		Difficulty:          common.DifficultyHard,
		CookingTime:         intPtr(45),
		Cuisine:             "Italian",
		Preferences:         []string{"healthy", "quick"},
		DietaryRestrictions: []string{"no nuts"},
		Mood:                "romantic",
	})

	requirements := strings.Split(strings.Split(got, "\n\nReturn the recipe")[0], "Requirements:\n")[1]
	assert.Equal(t, strings.Join([]string{
		"- Difficulty: hard",
		"- Maximum cooking time: 45 minutes",
		"- Cuisine style: Italian",
		"- Preferences: healthy, quick",
		"- Dietary restrictions: no nuts",
		"- Mood/Style: romantic",
	}, "\n"), requirements)
}

func TestRecipeMessages(t *testing.T) {
	msgs := RecipeMessages(common.RecipeRequest{Ingredients: []string{"egg"}, Language: common.Indonesian})
	require.Len(t, msgs, 2)
	assert.Equal(t, ai.RoleSystem, msgs[0].Role)
	assert.True(t, strings.HasPrefix(msgs[0].Content, "Anda adalah asisten AI chef profesional."))
	assert.Equal(t, ai.RoleUser, msgs[1].Role)
}

func TestQuestionMessages(t *testing.T) {
	msgs := QuestionMessages("How do I keep rice fluffy?", "", common.English)
	require.Len(t, msgs, 2)
	assert.Equal(t, `As a professional chef, answer this cooking question: "How do I keep rice fluffy?" Provide a helpful, practical answer in 2-3 sentences.`, msgs[1].Content)

	msgs = QuestionMessages("Berapa lama merebus telur?", "telur ayam", common.Indonesian)
	assert.Contains(t, msgs[1].Content, "Konteks: telur ayam")
	assert.Contains(t, msgs[0].Content, "Anda adalah chef profesional dan ahli memasak.")
}

func TestTipsAndSubstitutionMessages(t *testing.T) {
	tips := TipsMessages("Fried rice", common.English)
	assert.Contains(t, tips[1].Content, "tips for making this recipe better: Fried rice.")

	subs := SubstitutionMessages("butter", common.Indonesian)
	assert.Contains(t, subs[1].Content, `pengganti yang baik untuk "butter"`)
}
