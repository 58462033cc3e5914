// Package goldmark renders article Markdown to sanitized HTML.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/nicobar"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Formatter implements nicobar.Formatter at compile time.
var _ nicobar.Formatter = (*Formatter)(nil)

// Formatter renders GitHub-flavored Markdown and strips anything the UGC
// policy does not allow. Raw HTML in the source is rendered and then
// sanitized rather than escaped.
type Formatter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Format returns the sanitized HTML rendering of markdown.
func (f *Formatter) Format(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(markdown), &buf); err != nil {
		return "", nicobar.Errorf(nicobar.EINTERNAL, "render markdown: %v", err)
	}
	return f.policy.Sanitize(buf.String()), nil
}
