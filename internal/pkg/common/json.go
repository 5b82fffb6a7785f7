package common

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	unquotedKeyPattern = regexp.MustCompile(`([{\[,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	codeFencePattern   = regexp.MustCompile("```(?:json|JSON)?[ \t]*\\n?")
)

// ParseJSON decodes exactly one JSON value from data into v. Numbers decode
// as json.Number so callers can accept both 15 and "15".
func ParseJSON(data string, v interface{}) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}

	// trailing data is an error
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected extra JSON data")
	}
	return nil
}

// QuoteJSONKeys adds the missing double quotes around bare object keys
func QuoteJSONKeys(raw string) string {
	return unquotedKeyPattern.ReplaceAllString(raw, `$1"$2":`)
}

// StripCodeFences removes Markdown code fence markers
func StripCodeFences(raw string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(raw, ""))
}
