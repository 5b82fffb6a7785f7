// Package language guesses whether user text is English or Indonesian.
package language

import (
	"regexp"
	"strings"

	"kitchen-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Threshold is the share of Indonesian marker hits, in percent, above which text counts as Indonesian
const Threshold = 15.0

// indonesianMarkers are function words, question words and cooking terms.
// Entries listed twice are counted twice.
var indonesianMarkers = []string{
	"yang", "dengan", "untuk", "dari", "dan", "atau", "ini", "itu", "adalah", "akan",
	"sudah", "belum", "bisa", "tidak", "bukan", "juga", "saja", "hanya", "masih",
	"masak", "memasak", "resep", "bahan", "bumbu", "goreng", "rebus", "tumis", "bakar",
	"kukus", "sajikan", "hidangkan", "potong", "iris", "cincang",
	"apa", "bagaimana", "cara", "kapan", "dimana", "kenapa", "mengapa",
	"di", "ke", "dari", "pada", "dalam", "oleh", "untuk", "dengan",
}

var markerPatterns = compileMarkers(indonesianMarkers)

func compileMarkers(words []string) []*regexp.Regexp {
	compiled := make(map[string]*regexp.Regexp, len(words))
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		re, ok := compiled[w]
		if !ok {
			re = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
			compiled[w] = re
		}
		patterns = append(patterns, re)
	}
	return patterns
}

// Score returns the Indonesian marker hits per whitespace token, as a percentage
func Score(text string) float64 {
	lower := strings.ToLower(text)
	tokens := len(strings.Fields(lower))
	if tokens == 0 {
		tokens = 1
	}

	matches := 0
	for _, re := range markerPatterns {
		matches += len(re.FindAllStringIndex(lower, -1))
	}
	return float64(matches) / float64(tokens) * 100
}

// Detect classifies text as Indonesian or English. Empty text is English.
func Detect(text string) common.Language {
	if strings.TrimSpace(text) == "" {
		return common.English
	}

	score := Score(text)
	lang := common.English
	if score > Threshold {
		lang = common.Indonesian
	}

	common.LogDebug("language detected",
		zap.String("language", string(lang)),
		zap.Float64("score", score),
		zap.String("preview", common.Truncate(text, 50)),
	)
	return lang
}
