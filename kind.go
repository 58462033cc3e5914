package nicobar

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind tags a pipeline error with the stage that produced it.
type Kind string

// Pipeline error kinds. The string values are part of the JSON error body
// returned to HTTP clients.
const (
	KindAPI             Kind = "api_error"
	KindMapping         Kind = "mapping_error"
	KindDOMParse        Kind = "dom_parse_error"
	KindExtractResponse Kind = "raw_response_error"
	KindCleanResponse   Kind = "clean_response_error"
	KindJSONParse       Kind = "json_parse_error"
	KindArticleMapping  Kind = "article_mapping_error"
	KindAIService       Kind = "ai_service_error"

	KindCreateArticle     Kind = "createArticleError"
	KindFindArticleByID   Kind = "findArticleByIdError"
	KindFindManyArticles  Kind = "findManyArticlesError"
	KindFindGameCardByID  Kind = "findGameCardByIdError"
	KindFindManyGameCards Kind = "findManyGameCardsError"
)

// Kinded is implemented by every tagged pipeline error.
type Kinded interface {
	error
	Kind() Kind
}

// Ensure every tagged error satisfies Kinded.
var (
	_ Kinded = (*APIError)(nil)
	_ Kinded = (*MappingError)(nil)
	_ Kinded = (*DOMParseError)(nil)
	_ Kinded = (*ExtractResponseError)(nil)
	_ Kinded = (*CleanResponseError)(nil)
	_ Kinded = (*JSONParseError)(nil)
	_ Kinded = (*ArticleMappingError)(nil)
	_ Kinded = (*AIServiceError)(nil)
	_ Kinded = (*StoreError)(nil)
)

// KindOf returns the tag of err, or "" when err is not a tagged error.
func KindOf(err error) Kind {
	var k Kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}

// marshalTagged encodes v with an additional "type" field holding kind.
func marshalTagged(kind Kind, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	fields["type"], _ = json.Marshal(kind)
	return json.Marshal(fields)
}

// APIError reports a failed upstream request. Code is the HTTP status, or
// "0" when the request never produced a response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: code=%s message=%s", e.Code, e.Message)
}

func (e *APIError) Kind() Kind { return KindAPI }

func (e *APIError) MarshalJSON() ([]byte, error) {
	type plain APIError
	return marshalTagged(e.Kind(), (*plain)(e))
}

// MappingError reports a response body that could not be mapped to a domain value.
type MappingError struct {
	Message string `json:"message"`
}

func (e *MappingError) Error() string { return "mapping error: " + e.Message }

func (e *MappingError) Kind() Kind { return KindMapping }

func (e *MappingError) MarshalJSON() ([]byte, error) {
	type plain MappingError
	return marshalTagged(e.Kind(), (*plain)(e))
}

// DOMParseError reports a provider page whose markup lacks a required element.
type DOMParseError struct {
	Provider string `json:"provider"`
	Message  string `json:"message"`
}

func (e *DOMParseError) Error() string {
	return fmt.Sprintf("dom parse error: provider=%s message=%s", e.Provider, e.Message)
}

func (e *DOMParseError) Kind() Kind { return KindDOMParse }

func (e *DOMParseError) MarshalJSON() ([]byte, error) {
	type plain DOMParseError
	return marshalTagged(e.Kind(), (*plain)(e))
}

// ExtractResponseError reports an AI response with no extractable JSON block.
type ExtractResponseError struct {
	RawResponse string `json:"rawResponse"`
}

func (e *ExtractResponseError) Error() string { return "no json block in ai response" }

func (e *ExtractResponseError) Kind() Kind { return KindExtractResponse }

func (e *ExtractResponseError) MarshalJSON() ([]byte, error) {
	type plain ExtractResponseError
	return marshalTagged(e.Kind(), (*plain)(e))
}

// CleanResponseError reports an extracted block whose escaping could not be repaired.
type CleanResponseError struct {
	ExtractResponse string `json:"extractResponse"`
	Message         string `json:"message"`
}

func (e *CleanResponseError) Error() string { return "clean response error: " + e.Message }

func (e *CleanResponseError) Kind() Kind { return KindCleanResponse }

func (e *CleanResponseError) MarshalJSON() ([]byte, error) {
	type plain CleanResponseError
	return marshalTagged(e.Kind(), (*plain)(e))
}

// JSONParseError reports cleaned text that is still not valid JSON.
type JSONParseError struct {
	CleanResponse string `json:"cleanResponse"`
	Message       string `json:"message"`
}

func (e *JSONParseError) Error() string { return "json parse error: " + e.Message }

func (e *JSONParseError) Kind() Kind { return KindJSONParse }

func (e *JSONParseError) MarshalJSON() ([]byte, error) {
	type plain JSONParseError
	return marshalTagged(e.Kind(), (*plain)(e))
}

// ArticleMappingError names the first raw article field that failed validation.
type ArticleMappingError struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

func (e *ArticleMappingError) Error() string {
	return fmt.Sprintf("article mapping error: key=%s message=%s", e.Key, e.Message)
}

func (e *ArticleMappingError) Kind() Kind { return KindArticleMapping }

func (e *ArticleMappingError) MarshalJSON() ([]byte, error) {
	type plain ArticleMappingError
	return marshalTagged(e.Kind(), (*plain)(e))
}

// AIServiceError reports a failed call to a text generation backend.
type AIServiceError struct {
	Provider string `json:"provider"`
	Message  string `json:"message"`
}

func (e *AIServiceError) Error() string {
	return fmt.Sprintf("ai service error: provider=%s message=%s", e.Provider, e.Message)
}

func (e *AIServiceError) Kind() Kind { return KindAIService }

func (e *AIServiceError) MarshalJSON() ([]byte, error) {
	type plain AIServiceError
	return marshalTagged(e.Kind(), (*plain)(e))
}

// StoreError reports a failed repository operation. StoreKind is one of the
// create/find kinds; Code carries the application code (ENOTFOUND for empty
// results, EINTERNAL otherwise).
type StoreError struct {
	StoreKind Kind   `json:"-"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

// StoreErrorf returns a StoreError of the given kind and code.
func StoreErrorf(kind Kind, code string, format string, args ...any) *StoreError {
	return &StoreError{StoreKind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapStoreError tags a driver error with a repository kind.
func WrapStoreError(kind Kind, err error) *StoreError {
	return &StoreError{StoreKind: kind, Code: EINTERNAL, Message: err.Error(), Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.StoreKind, e.Message)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Kind() Kind { return e.StoreKind }

func (e *StoreError) MarshalJSON() ([]byte, error) {
	type plain StoreError
	return marshalTagged(e.Kind(), (*plain)(e))
}
