// Package aitext turns free-form AI responses into validated articles.
//
// A response flows through four stages, each failing with its own tagged
// error: ExtractBlock isolates the JSON document, Repair fixes the escaping
// chat models tend to get wrong, ParseRawArticle decodes the document and
// Pipeline.UnsavedArticle validates and normalizes the fields.
package aitext

import (
	"strings"

	"github.com/fwojciec/nicobar"
)

const (
	jsonFence  = "```json"
	closeFence = "```"
)

// ExtractBlock returns the JSON document embedded in an AI response.
//
// The document is the text after the first ```json fence up to the next
// ``` (the closing fence is optional). Dialects that do not require a fence
// fall back to the whole trimmed response.
func ExtractBlock(raw string, dialect nicobar.ResponseDialect) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &nicobar.ExtractResponseError{RawResponse: raw}
	}

	if _, after, ok := strings.Cut(raw, jsonFence); ok {
		block, _, _ := strings.Cut(after, closeFence)
		if strings.TrimSpace(block) == "" {
			return "", &nicobar.ExtractResponseError{RawResponse: raw}
		}
		return block, nil
	}

	if dialect.StripJSONFence {
		return "", &nicobar.ExtractResponseError{RawResponse: raw}
	}
	return strings.TrimSpace(raw), nil
}
