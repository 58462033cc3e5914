package aitext

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/nicobar"
)

// DefaultTitle is used when no title can be derived from the content.
const DefaultTitle = "Untitled"

// htmlPattern detects content that was written as HTML instead of Markdown.
var htmlPattern = regexp.MustCompile(`(?i)<(p|h[1-6]|div|ul|ol|li|br|strong|em|a|article|section)[\s>/]`)

// Pipeline runs the article stages for one response dialect.
type Pipeline struct {
	dialect   nicobar.ResponseDialect
	converter nicobar.Converter
	formatter nicobar.Formatter
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConverter normalizes HTML content to Markdown.
func WithConverter(c nicobar.Converter) Option {
	return func(p *Pipeline) {
		p.converter = c
	}
}

// WithFormatter renders the formatted content of articles.
// Without a formatter the formatted content equals the content.
func WithFormatter(f nicobar.Formatter) Option {
	return func(p *Pipeline) {
		p.formatter = f
	}
}

// WithClock sets the source of article dates.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// NewPipeline creates a Pipeline for the given dialect.
func NewPipeline(dialect nicobar.ResponseDialect, opts ...Option) *Pipeline {
	p := &Pipeline{
		dialect: dialect,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dialect returns the response dialect the pipeline expects.
func (p *Pipeline) Dialect() nicobar.ResponseDialect {
	return p.dialect
}

// Process runs all stages on an AI response.
func (p *Pipeline) Process(response string, prompt nicobar.ArticlePrompt) (*nicobar.UnsavedArticle, error) {
	raw, err := p.RawArticle(response, prompt)
	if err != nil {
		return nil, err
	}
	return p.UnsavedArticle(raw)
}

// RawArticle extracts, repairs and decodes an AI response.
func (p *Pipeline) RawArticle(response string, prompt nicobar.ArticlePrompt) (*nicobar.RawArticle, error) {
	block, err := ExtractBlock(response, p.dialect)
	if err != nil {
		return nil, err
	}
	clean, err := Repair(block)
	if err != nil {
		return nil, err
	}
	return ParseRawArticle(clean, prompt)
}

// UnsavedArticle validates a raw article. Fields are checked in a fixed
// order and the first failure is reported.
func (p *Pipeline) UnsavedArticle(raw *nicobar.RawArticle) (*nicobar.UnsavedArticle, error) {
	content, ok := decodeString(raw.Content)
	if !ok {
		return nil, mappingErr("content", "content is not a string")
	}
	tags, ok := decodeStrings(raw.Tags)
	if !ok {
		return nil, mappingErr("tags", "tags is not an array of strings")
	}
	minutesValue, ok := decodeScalar(raw.EstimatedReadingTimeMinutes)
	if !ok {
		return nil, mappingErr("estimatedReadingTimeMinutes", "estimatedReadingTimeMinutes is not a string or number")
	}
	related, ok := decodeStrings(raw.RelatedTopicsTags)
	if !ok {
		return nil, mappingErr("relatedTopicsTags", "relatedTopicsTags is not an array of strings")
	}
	if raw.ArticlePrompt == nil {
		return nil, mappingErr("articlePrompt", "articlePrompt is missing")
	}

	minutes, err := readingMinutes(minutesValue)
	if err != nil {
		return nil, err
	}

	if p.converter != nil && htmlPattern.MatchString(content) {
		md, err := p.converter.Convert(content)
		if err != nil {
			return nil, mappingErr("content", "content could not be converted to markdown: "+err.Error())
		}
		content = md
	}

	formatted := content
	if p.formatter != nil {
		formatted, err = p.formatter.Format(content)
		if err != nil {
			return nil, mappingErr("formatted_content", err.Error())
		}
	}

	return &nicobar.UnsavedArticle{
		Content:                     content,
		Title:                       p.title(raw.Title, content),
		FormattedContent:            formatted,
		Date:                        p.now().UTC(),
		Tags:                        tags,
		RelatedTopicsTags:           related,
		EstimatedReadingTimeMinutes: minutes,
		ArticlePrompt:               *raw.ArticlePrompt,
	}, nil
}

func (p *Pipeline) title(source json.RawMessage, content string) string {
	if p.dialect.TrustSourceTitle {
		if t, ok := decodeString(source); ok && strings.TrimSpace(t) != "" {
			return strings.TrimSpace(t)
		}
	}
	return DeriveTitle(content)
}

// DeriveTitle returns the first non-empty line of markdown content with
// heading markers removed, or DefaultTitle.
func DeriveTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		line = strings.Trim(line, "*_")
		if line != "" {
			return line
		}
	}
	return DefaultTitle
}

func mappingErr(key, msg string) error {
	return &nicobar.ArticleMappingError{Key: key, Message: msg}
}

func decodeString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func decodeStrings(raw json.RawMessage) ([]string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	ss := []string{}
	if err := json.Unmarshal(raw, &ss); err != nil {
		return nil, false
	}
	return ss, true
}

// decodeScalar accepts a JSON string or number. Numbers are returned as json.Number.
func decodeScalar(raw json.RawMessage) (any, bool) {
	if s, ok := decodeString(raw); ok {
		return s, true
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	n, ok := v.(json.Number)
	return n, ok
}

// readingMinutes normalizes a reading time to whole minutes. Strings are
// read up to the first non-digit; numbers are truncated.
// maxReadingMinutes bounds reading times so they fit every int width.
const maxReadingMinutes = math.MaxInt32

func readingMinutes(v any) (int, error) {
	const key = "estimatedReadingTimeMinutes"
	switch v := v.(type) {
	case string:
		n, ok := leadingInt(v)
		if !ok {
			return 0, mappingErr(key, "estimatedReadingTimeMinutes is not a number: "+strconv.Quote(v))
		}
		if n < 0 || n > maxReadingMinutes {
			return 0, mappingErr(key, "estimatedReadingTimeMinutes is out of range")
		}
		return n, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil || math.IsNaN(f) || f < 0 || f > maxReadingMinutes {
			return 0, mappingErr(key, "estimatedReadingTimeMinutes is out of range")
		}
		return int(math.Trunc(f)), nil
	}
	return 0, mappingErr(key, "estimatedReadingTimeMinutes is not a string or number")
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
