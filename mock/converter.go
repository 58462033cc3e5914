package mock

import "github.com/fwojciec/nicobar"

var (
	_ nicobar.Converter = (*Converter)(nil)
	_ nicobar.Formatter = (*Formatter)(nil)
)

// Converter is a mock implementation of nicobar.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Formatter is a mock implementation of nicobar.Formatter.
type Formatter struct {
	FormatFn func(markdown string) (string, error)
}

func (f *Formatter) Format(markdown string) (string, error) {
	return f.FormatFn(markdown)
}
