// Package htmltomarkdown normalizes HTML article bodies to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/nicobar"
)

// Ensure Converter implements nicobar.Converter at compile time.
var _ nicobar.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Backends sometimes write article content
// as HTML even when asked for Markdown; the converter brings it back to the
// stored format.
type Converter struct {
	conv *converter.Converter
}

// pageChrome lists elements a backend emits when it wraps the article in a
// whole page. None of them belong in a stored article body.
var pageChrome = []string{"nav", "header", "footer", "aside", "form", "button"}

// NewConverter creates a Converter that writes the Markdown dialect articles
// are stored in: ATX headings, "-" bullets, "*" emphasis and fenced code.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithBulletListMarker("-"),
				commonmark.WithEmDelimiter("*"),
				commonmark.WithStrongDelimiter("**"),
				commonmark.WithCodeBlockFence("```"),
				commonmark.WithHorizontalRule("---"),
				// Adjacent lists would otherwise be split by an HTML comment
				// that Simplify then shows as summary text.
				commonmark.WithListEndComment(false),
				// Anchors without a target are kept as plain words.
				commonmark.WithLinkEmptyHrefBehavior(commonmark.LinkBehaviorSkip),
			),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
	)
	for _, tag := range pageChrome {
		conv.Register.TagType(tag, converter.TagTypeRemove, converter.PriorityStandard)
	}
	return &Converter{conv: conv}
}

// Convert transforms HTML content into trimmed Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nicobar.Errorf(nicobar.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", nicobar.Errorf(nicobar.EINVALID, "convert html: %v", err)
	}

	return strings.TrimSpace(result), nil
}
