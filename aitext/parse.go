package aitext

import (
	"encoding/json"

	"github.com/fwojciec/nicobar"
)

// ParseRawArticle decodes a repaired document. The caller's prompt always
// replaces whatever prompt the document carries.
func ParseRawArticle(clean string, prompt nicobar.ArticlePrompt) (*nicobar.RawArticle, error) {
	var raw nicobar.RawArticle
	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return nil, &nicobar.JSONParseError{CleanResponse: clean, Message: err.Error()}
	}
	raw.ArticlePrompt = &prompt
	return &raw, nil
}
