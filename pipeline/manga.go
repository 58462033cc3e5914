package pipeline

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/nicobar"
)

// Ensure Manga implements nicobar.MangaReader.
var _ nicobar.MangaReader = (*Manga)(nil)

// MangaListPath is the catalog page of every provider.
const MangaListPath = "/projects"

// Manga fetches provider pages and extracts chapters, chapter lists and catalogs.
type Manga struct {
	Fetcher   nicobar.Fetcher
	Extractor nicobar.MangaExtractor
}

// Chapter fetches and extracts the chapter at path.
func (m *Manga) Chapter(ctx context.Context, provider nicobar.Provider, path string) (*nicobar.Chapter, error) {
	target, err := ProviderURL(provider, path)
	if err != nil {
		return nil, err
	}
	return nicobar.FetchAndMap(ctx, m.Fetcher, target, nicobar.RequestConfig{}, func(body string) (*nicobar.Chapter, error) {
		return m.Extractor.ExtractChapter(nicobar.RawChapter{Provider: provider, URL: target, HTML: body})
	})
}

// ChapterList fetches and extracts the chapter index at path.
func (m *Manga) ChapterList(ctx context.Context, provider nicobar.Provider, path string) (*nicobar.ChapterList, error) {
	target, err := ProviderURL(provider, path)
	if err != nil {
		return nil, err
	}
	return nicobar.FetchAndMap(ctx, m.Fetcher, target, nicobar.RequestConfig{}, func(body string) (*nicobar.ChapterList, error) {
		return m.Extractor.ExtractChapterList(nicobar.RawChapterList{Provider: provider, HTML: body})
	})
}

// MangaList fetches and extracts the provider catalog.
func (m *Manga) MangaList(ctx context.Context, provider nicobar.Provider) (*nicobar.MangaList, error) {
	target, err := ProviderURL(provider, MangaListPath)
	if err != nil {
		return nil, err
	}
	return nicobar.FetchAndMap(ctx, m.Fetcher, target, nicobar.RequestConfig{}, func(body string) (*nicobar.MangaList, error) {
		return m.Extractor.ExtractMangaList(nicobar.RawMangaList{Provider: provider, HTML: body})
	})
}

// ProviderURL resolves path against the provider base URL. Absolute URLs are
// accepted only when they stay on the provider's scheme and host.
func ProviderURL(provider nicobar.Provider, path string) (string, error) {
	if err := provider.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(path) == "" {
		return "", nicobar.Errorf(nicobar.EINVALID, "path required")
	}

	base, err := url.Parse(provider.BaseURL())
	if err != nil {
		return "", nicobar.Errorf(nicobar.EINTERNAL, "invalid base URL for %s", provider)
	}
	ref, err := url.Parse(strings.TrimSpace(path))
	if err != nil {
		return "", nicobar.Errorf(nicobar.EINVALID, "invalid path %q", path)
	}

	resolved := base.ResolveReference(ref)
	if resolved.Scheme != base.Scheme || resolved.Host != base.Host {
		return "", nicobar.Errorf(nicobar.EINVALID, "url %q is outside provider %s", path, provider)
	}
	return resolved.String(), nil
}
