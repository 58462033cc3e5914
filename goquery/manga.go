package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nicobar"
)

const unknownTitle = "Unknown Title"

var chapterNumberPattern = regexp.MustCompile(`(?i)Chapter\s+(\d+)`)

var _ nicobar.MangaExtractor = (*MangaExtractor)(nil)

// MangaExtractor reads chapter pages, chapter indexes and catalogs.
type MangaExtractor struct {
	registry *Registry
}

// NewMangaExtractor creates a MangaExtractor using the provider selectors in registry.
func NewMangaExtractor(registry *Registry) *MangaExtractor {
	return &MangaExtractor{registry: registry}
}

// ExtractChapter returns the chapter and its pages in document order.
func (e *MangaExtractor) ExtractChapter(raw nicobar.RawChapter) (chapter *nicobar.Chapter, err error) {
	domErr := domParseError(raw.Provider)
	defer recoverAs(&err, domErr)

	sel, err := e.registry.Get(raw.Provider)
	if err != nil {
		return nil, err
	}
	doc, err := parse(raw.HTML)
	if err != nil {
		return nil, domErr(err.Error())
	}

	title := strings.TrimSpace(doc.Find(sel.ChapterTitle).First().Text())
	if title == "" {
		title = unknownTitle
	}
	number := ChapterNumber(title)
	chapterID := stableID(string(raw.Provider), raw.URL, title)

	var pages []nicobar.ChapterPage
	var missing bool
	doc.Find(sel.ChapterPages).EachWithBreak(func(i int, img *goquery.Selection) bool {
		src, ok := img.Attr("src")
		src = strings.TrimSpace(src)
		if !ok || src == "" {
			missing = true
			return false
		}
		alt, _ := img.Attr("alt")
		pages = append(pages, nicobar.ChapterPage{
			ID:         stableID(chapterID, src),
			ChapterID:  chapterID,
			Chapter:    number,
			PageNumber: i,
			Title:      strings.TrimSpace(alt),
			Provider:   raw.Provider,
			URL:        src,
		})
		return true
	})
	if missing {
		return nil, domErr("page image without src")
	}
	if len(pages) == 0 {
		return nil, domErr("no page images found")
	}

	return &nicobar.Chapter{
		ID:       chapterID,
		Title:    title,
		Number:   number,
		Provider: raw.Provider,
		Pages:    pages,
		Tags:     []string{},
	}, nil
}

// ExtractChapterList returns the chapter index. Anchors whose text does not
// contain "pter" are not chapter links and are skipped.
func (e *MangaExtractor) ExtractChapterList(raw nicobar.RawChapterList) (list *nicobar.ChapterList, err error) {
	domErr := domParseError(raw.Provider)
	defer recoverAs(&err, domErr)

	sel, err := e.registry.Get(raw.Provider)
	if err != nil {
		return nil, err
	}
	doc, err := parse(raw.HTML)
	if err != nil {
		return nil, domErr(err.Error())
	}

	title := unknownTitle
	if content, ok := doc.Find(sel.ListTitle).First().Attr("content"); ok {
		before, _, _ := strings.Cut(content, "|")
		if t := strings.TrimSpace(before); t != "" {
			title = t
		}
	}

	chapters := []nicobar.SimpleChapter{}
	doc.Find(sel.ChapterLinks).Each(func(_ int, a *goquery.Selection) {
		text := anchorText(a)
		_, after, ok := strings.Cut(text, "pter")
		if !ok {
			return
		}
		href, _ := a.Attr("href")
		chapters = append(chapters, nicobar.SimpleChapter{
			Title:    text,
			Number:   leadingNumber(after),
			Provider: raw.Provider,
			URL:      href,
		})
	})

	return &nicobar.ChapterList{
		Title:    title,
		Provider: raw.Provider,
		Chapters: chapters,
	}, nil
}

// ExtractMangaList returns the catalog entries in document order.
func (e *MangaExtractor) ExtractMangaList(raw nicobar.RawMangaList) (list *nicobar.MangaList, err error) {
	domErr := domParseError(raw.Provider)
	defer recoverAs(&err, domErr)

	sel, err := e.registry.Get(raw.Provider)
	if err != nil {
		return nil, err
	}
	doc, err := parse(raw.HTML)
	if err != nil {
		return nil, domErr(err.Error())
	}

	mangas := []nicobar.SimpleManga{}
	var cardErr error
	doc.Find(sel.CatalogCards).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		img := card.Find("img").First()
		link := card.Find("a").First()
		if img.Length() == 0 || link.Length() == 0 {
			cardErr = domErr("catalog card without image or link")
			return false
		}
		alt, _ := img.Attr("alt")
		src, _ := img.Attr("src")
		href, _ := link.Attr("href")
		mangas = append(mangas, nicobar.SimpleManga{
			Title:    strings.TrimSpace(alt),
			Image:    src,
			Provider: raw.Provider,
			URL:      href,
		})
		return true
	})
	if cardErr != nil {
		return nil, cardErr
	}

	return &nicobar.MangaList{
		Provider: raw.Provider,
		Mangas:   mangas,
	}, nil
}

// ChapterNumber returns the number in a "Chapter N" title, or
// nicobar.ChapterNumberUnknown.
func ChapterNumber(title string) int {
	m := chapterNumberPattern.FindStringSubmatch(title)
	if m == nil {
		return nicobar.ChapterNumberUnknown
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nicobar.ChapterNumberUnknown
	}
	return n
}

// anchorText prefers the text of the anchor's first child element, where
// providers put the chapter label, and falls back to the anchor text.
func anchorText(a *goquery.Selection) string {
	if child := a.Children().First(); child.Length() > 0 {
		if t := strings.TrimSpace(child.Text()); t != "" {
			return t
		}
	}
	return strings.TrimSpace(a.Text())
}

// leadingNumber parses the digits at the start of s, ignoring leading space.
func leadingNumber(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nicobar.ChapterNumberUnknown
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nicobar.ChapterNumberUnknown
	}
	return n
}

func domParseError(provider nicobar.Provider) func(string) error {
	return func(msg string) error {
		return &nicobar.DOMParseError{Provider: string(provider), Message: msg}
	}
}
