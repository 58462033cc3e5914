package nicobar

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// Formatter renders Markdown as safe HTML for display.
type Formatter interface {
	// Format returns sanitized HTML for the given Markdown.
	Format(markdown string) (string, error)
}
