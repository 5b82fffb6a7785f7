// Package prompt assembles the chat-completion messages for every generation task.
package prompt

import (
	"fmt"
	"strings"

	"kitchen-assistant/internal/core/ai"
	"kitchen-assistant/internal/pkg/common"
)

// Sampling temperatures
const (
	RecipeTemperature   = 0.9
	AdvisoryTemperature = 0.7
)

type phrases struct {
	create              string
	requirements        string
	difficulty          string
	maxCookingTime      string
	minutes             string
	cuisineStyle        string
	preferences         string
	dietaryRestrictions string
	mood                string
	returnFormat        string
	makeCreative        string
	closing             string

	// placeholders in the JSON example
	title       string
	description string
	ingredient  string
	step        string
	cuisine     string
	tag         string
	tip         string
	story       string
}

var phraseTable = map[common.Language]phrases{
	common.English: {
		create:              "Create a unique and creative recipe using these ingredients",
		requirements:        "Requirements",
		difficulty:          "Difficulty",
		maxCookingTime:      "Maximum cooking time",
		minutes:             "minutes",
		cuisineStyle:        "Cuisine style",
		preferences:         "Preferences",
		dietaryRestrictions: "Dietary restrictions",
		mood:                "Mood/Style",
		returnFormat:        "Return the recipe in this exact JSON format",
		makeCreative:        "Make it creative and unique, not just a standard recipe. Include interesting flavor combinations and techniques.",
		closing:             "IMPORTANT: Provide ALL content in natural English. Make the title specific and appealing. Instructions should be detailed and complete.",
		title:               "Recipe Name",
		description:         "Brief appetizing description",
		ingredient:          "ingredient %d with amount",
		step:                "step %d",
		cuisine:             "cuisine type",
		tag:                 "tag%d",
		tip:                 "tip %d",
		story:               "Brief interesting story about the dish",
	},
	common.Indonesian: {
		create:              "Buat resep unik dan kreatif menggunakan bahan-bahan ini",
		requirements:        "Persyaratan",
		difficulty:          "Tingkat kesulitan",
		maxCookingTime:      "Waktu memasak maksimum",
		minutes:             "menit",
		cuisineStyle:        "Gaya masakan",
		preferences:         "Preferensi",
		dietaryRestrictions: "Batasan makanan",
		mood:                "Suasana/Gaya",
		returnFormat:        "Kembalikan resep dalam format JSON yang tepat ini",
		makeCreative:        "Buatlah kreatif dan unik, bukan hanya resep standar. Sertakan kombinasi rasa dan teknik yang menarik.",
		closing:             "PENTING: Berikan SEMUA konten dalam Bahasa Indonesia yang natural dan mudah dipahami. Judul harus spesifik dan menarik. Instruksi harus detail dan lengkap. Gunakan istilah masakan Indonesia yang umum.",
		title:               "Nama Resep",
		description:         "Deskripsi singkat yang menggugah selera",
		ingredient:          "bahan %d dengan takaran",
		step:                "langkah %d",
		cuisine:             "jenis masakan",
		tag:                 "label%d",
		tip:                 "tips %d",
		story:               "Cerita singkat yang menarik tentang hidangan ini",
	},
}

func phrasesFor(lang common.Language) phrases {
	if p, ok := phraseTable[lang]; ok {
		return p
	}
	return phraseTable[common.English]
}

// BuildRecipePrompt renders the user message for a recipe request.
// Optional requirement lines appear only when the field is set.
func BuildRecipePrompt(req common.RecipeRequest) string {
	p := phrasesFor(req.Language)

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = common.DifficultyMedium
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s.\n\n", p.create, strings.Join(req.Ingredients, ", "))

	fmt.Fprintf(&b, "%s:\n", p.requirements)
	fmt.Fprintf(&b, "- %s: %s\n", p.difficulty, difficulty)
	if req.CookingTime != nil && *req.CookingTime > 0 {
		fmt.Fprintf(&b, "- %s: %d %s\n", p.maxCookingTime, *req.CookingTime, p.minutes)
	}
	if req.Cuisine != "" {
		fmt.Fprintf(&b, "- %s: %s\n", p.cuisineStyle, req.Cuisine)
	}
	if len(req.Preferences) > 0 {
		fmt.Fprintf(&b, "- %s: %s\n", p.preferences, strings.Join(req.Preferences, ", "))
	}
	if len(req.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "- %s: %s\n", p.dietaryRestrictions, strings.Join(req.DietaryRestrictions, ", "))
	}
	if req.Mood != "" {
		fmt.Fprintf(&b, "- %s: %s\n", p.mood, req.Mood)
	}

	fmt.Fprintf(&b, "\n%s:\n", p.returnFormat)
	b.WriteString(jsonExample(p))
	b.WriteString("\n\n")
	b.WriteString(p.closing)
	b.WriteString("\n")
	b.WriteString(p.makeCreative)

	return b.String()
}

func jsonExample(p phrases) string {
	list := func(format string, n int) string {
		items := make([]string, n)
		for i := range items {
			items[i] = fmt.Sprintf(`"`+format+`"`, i+1)
		}
		return "[" + strings.Join(items, ", ") + "]"
	}

	lines := []string{
		"{",
		fmt.Sprintf(`  "title": "%s",`, p.title),
		fmt.Sprintf(`  "description": "%s",`, p.description),
		fmt.Sprintf(`  "ingredients": %s,`, list(p.ingredient, 2)),
		fmt.Sprintf(`  "instructions": %s,`, list(p.step, 3)),
		`  "prepTime": 15,`,
		`  "cookTime": 30,`,
		`  "servings": 4,`,
		`  "difficulty": "easy|medium|hard",`,
		fmt.Sprintf(`  "cuisine": "%s",`, p.cuisine),
		fmt.Sprintf(`  "tags": %s,`, list(p.tag, 3)),
		fmt.Sprintf(`  "tips": %s,`, list(p.tip, 2)),
		fmt.Sprintf(`  "story": "%s"`, p.story),
		"}",
	}
	return strings.Join(lines, "\n")
}

// RecipeMessages returns the persona and task for a recipe request
func RecipeMessages(req common.RecipeRequest) []ai.Message {
	return []ai.Message{
		{Role: ai.RoleSystem, Content: req.Language.Pick(
			"You are a professional chef AI assistant. Generate creative and detailed recipes based on user requirements. Always return responses in valid JSON format.",
			"Anda adalah asisten AI chef profesional. Buat resep kreatif dan detail berdasarkan kebutuhan pengguna. Selalu kembalikan respons dalam format JSON yang valid.",
		)},
		{Role: ai.RoleUser, Content: BuildRecipePrompt(req)},
	}
}

// QuestionMessages returns the persona and task for a free-form cooking question
func QuestionMessages(question, context string, lang common.Language) []ai.Message {
	var user string
	if lang == common.Indonesian {
		user = fmt.Sprintf("Sebagai chef profesional, jawab pertanyaan memasak ini: \"%s\"", question)
		if context != "" {
			user += " Konteks: " + context
		}
		user += " Berikan jawaban yang membantu dan praktis dalam 2-3 kalimat."
	} else {
		user = fmt.Sprintf("As a professional chef, answer this cooking question: \"%s\"", question)
		if context != "" {
			user += " Context: " + context
		}
		user += " Provide a helpful, practical answer in 2-3 sentences."
	}

	return []ai.Message{
		{Role: ai.RoleSystem, Content: lang.Pick(
			"You are a professional chef and cooking expert. Provide helpful, practical cooking advice.",
			"Anda adalah chef profesional dan ahli memasak. Berikan saran memasak yang membantu dan praktis.",
		)},
		{Role: ai.RoleUser, Content: user},
	}
}

// TipsMessages asks for 3-5 tips on improving a recipe
func TipsMessages(recipe string, lang common.Language) []ai.Message {
	return []ai.Message{
		{Role: ai.RoleSystem, Content: lang.Pick(
			"You are a professional chef. Provide practical cooking tips in JSON array format.",
			"Anda adalah chef profesional. Berikan tips memasak praktis dalam format array JSON.",
		)},
		{Role: ai.RoleUser, Content: lang.Pick(
			fmt.Sprintf("Give me 3-5 professional cooking tips for making this recipe better: %s. Return only the tips as a JSON array of strings.", recipe),
			fmt.Sprintf("Berikan saya 3-5 tips memasak profesional untuk membuat resep ini lebih baik: %s. Kembalikan hanya tips sebagai array JSON string.", recipe),
		)},
	}
}

// SubstitutionMessages asks for 3-5 replacements for one ingredient
func SubstitutionMessages(ingredient string, lang common.Language) []ai.Message {
	return []ai.Message{
		{Role: ai.RoleSystem, Content: lang.Pick(
			"You are a professional chef. Provide ingredient substitutions in JSON array format.",
			"Anda adalah chef profesional. Berikan pengganti bahan dalam format array JSON.",
		)},
		{Role: ai.RoleUser, Content: lang.Pick(
			fmt.Sprintf("What are 3-5 good substitutions for \"%s\" in cooking? Return only the substitutions as a JSON array of strings.", ingredient),
			fmt.Sprintf("Apa 3-5 pengganti yang baik untuk \"%s\" dalam memasak? Kembalikan hanya pengganti sebagai array JSON string.", ingredient),
		)},
	}
}
