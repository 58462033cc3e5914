package nicobar

import (
	"context"
	"strings"
)

// Provider identifies a manga hosting site.
type Provider string

// Supported manga providers.
const (
	ProviderTCBScans Provider = "TCBScans"
	ProviderNIFTeam  Provider = "NIFTeam"
)

// providerBaseURLs maps each provider to the root every scraped URL must live under.
var providerBaseURLs = map[Provider]string{
	ProviderTCBScans: "https://tcbscans.com/",
	ProviderNIFTeam:  "https://nifteam.com/",
}

// Providers returns every supported provider.
func Providers() []Provider {
	return []Provider{ProviderTCBScans, ProviderNIFTeam}
}

// BaseURL returns the provider's root URL.
func (p Provider) BaseURL() string {
	return providerBaseURLs[p]
}

// ParseProvider returns the supported provider matching s, ignoring case.
func ParseProvider(s string) (Provider, error) {
	for _, p := range Providers() {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", Errorf(EINVALID, "unknown provider %q", s)
}

// UnmarshalText accepts provider names in any case. Unknown names are kept
// as given and rejected by Validate.
func (p *Provider) UnmarshalText(text []byte) error {
	if known, err := ParseProvider(string(text)); err == nil {
		*p = known
		return nil
	}
	*p = Provider(text)
	return nil
}

// Validate returns an error if the provider is not supported.
func (p Provider) Validate() error {
	if _, ok := providerBaseURLs[p]; !ok {
		return Errorf(EINVALID, "unknown provider %q", string(p))
	}
	return nil
}

// RawChapter is the fetched HTML of a chapter reader page. URL is the page
// address and seeds the chapter and page IDs.
type RawChapter struct {
	Provider Provider
	URL      string
	HTML     string
}

// RawChapterList is the fetched HTML of a manga's chapter index.
type RawChapterList struct {
	Provider Provider
	HTML     string
}

// RawMangaList is the fetched HTML of a provider's catalog page.
type RawMangaList struct {
	Provider Provider
	HTML     string
}

// ChapterNumberUnknown marks a chapter number that could not be determined.
const ChapterNumberUnknown = -1

// Chapter is a single chapter with its ordered page images.
type Chapter struct {
	ID       string        `json:"id"`
	MangaID  string        `json:"mangaId"`
	Title    string        `json:"title"`
	Number   int           `json:"number"`
	Provider Provider      `json:"provider"`
	Pages    []ChapterPage `json:"pages"`
	Tags     []string      `json:"tags"`
}

// ChapterPage is one page image of a chapter. PageNumber is 0-based.
type ChapterPage struct {
	ID         string   `json:"id"`
	MangaID    string   `json:"mangaId"`
	ChapterID  string   `json:"chapterId"`
	Chapter    int      `json:"chapter"`
	PageNumber int      `json:"pageNumber"`
	Title      string   `json:"title"`
	Provider   Provider `json:"provider"`
	URL        string   `json:"url"`
}

// ChapterList is the chapter index of one manga.
type ChapterList struct {
	Title    string          `json:"title"`
	Provider Provider        `json:"provider"`
	Chapters []SimpleChapter `json:"chapters"`
}

// SimpleChapter is a chapter index entry.
type SimpleChapter struct {
	Title    string   `json:"title"`
	Number   int      `json:"number"`
	Provider Provider `json:"provider"`
	URL      string   `json:"url"`
}

// MangaList is a provider's catalog.
type MangaList struct {
	Provider Provider      `json:"provider"`
	Mangas   []SimpleManga `json:"mangas"`
}

// SimpleManga is a catalog entry.
type SimpleManga struct {
	Title    string   `json:"title"`
	Image    string   `json:"image"`
	Provider Provider `json:"provider"`
	URL      string   `json:"url"`
}

// MangaExtractor maps provider pages onto manga domain values.
type MangaExtractor interface {
	// ExtractChapter returns the chapter and its pages.
	// Returns a DOMParseError when a page image lacks a source or no page images exist.
	ExtractChapter(raw RawChapter) (*Chapter, error)

	// ExtractChapterList returns the chapter index. Anchors that do not
	// look like chapter links are dropped.
	ExtractChapterList(raw RawChapterList) (*ChapterList, error)

	// ExtractMangaList returns the catalog.
	// Returns a DOMParseError when a card lacks its image or link.
	ExtractMangaList(raw RawMangaList) (*MangaList, error)
}

// MangaReader fetches and extracts provider pages.
type MangaReader interface {
	// Chapter returns the chapter at path, relative to the provider base URL.
	Chapter(ctx context.Context, provider Provider, path string) (*Chapter, error)

	// ChapterList returns the chapter index at path.
	ChapterList(ctx context.Context, provider Provider, path string) (*ChapterList, error)

	// MangaList returns the provider catalog.
	MangaList(ctx context.Context, provider Provider) (*MangaList, error)
}
