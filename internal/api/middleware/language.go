package middleware

import (
	"strings"

	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// LanguageKey is the context key holding the caller's UI language
const LanguageKey = "language"

// Language resolves the UI language from ?lang, then the first Accept-Language tag
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := c.Query("lang")
		if tag == "" {
			tag = c.GetHeader("Accept-Language")
			if i := strings.IndexAny(tag, ",;"); i >= 0 {
				tag = tag[:i]
			}
		}
		c.Set(LanguageKey, common.ParseLanguage(tag))
		c.Next()
	}
}

// GetLanguage returns the language set by Language, English when absent
func GetLanguage(c *gin.Context) common.Language {
	if v, ok := c.Get(LanguageKey); ok {
		if lang, ok := v.(common.Language); ok {
			return lang
		}
	}
	return common.English
}
