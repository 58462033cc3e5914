package mock

import (
	"context"

	"github.com/fwojciec/nicobar"
)

var (
	_ nicobar.MangaExtractor = (*MangaExtractor)(nil)
	_ nicobar.MangaReader    = (*MangaReader)(nil)
)

// MangaExtractor is a mock implementation of nicobar.MangaExtractor.
type MangaExtractor struct {
	ExtractChapterFn     func(raw nicobar.RawChapter) (*nicobar.Chapter, error)
	ExtractChapterListFn func(raw nicobar.RawChapterList) (*nicobar.ChapterList, error)
	ExtractMangaListFn   func(raw nicobar.RawMangaList) (*nicobar.MangaList, error)
}

func (e *MangaExtractor) ExtractChapter(raw nicobar.RawChapter) (*nicobar.Chapter, error) {
	return e.ExtractChapterFn(raw)
}

func (e *MangaExtractor) ExtractChapterList(raw nicobar.RawChapterList) (*nicobar.ChapterList, error) {
	return e.ExtractChapterListFn(raw)
}

func (e *MangaExtractor) ExtractMangaList(raw nicobar.RawMangaList) (*nicobar.MangaList, error) {
	return e.ExtractMangaListFn(raw)
}

// MangaReader is a mock implementation of nicobar.MangaReader.
type MangaReader struct {
	ChapterFn     func(ctx context.Context, provider nicobar.Provider, path string) (*nicobar.Chapter, error)
	ChapterListFn func(ctx context.Context, provider nicobar.Provider, path string) (*nicobar.ChapterList, error)
	MangaListFn   func(ctx context.Context, provider nicobar.Provider) (*nicobar.MangaList, error)
}

func (r *MangaReader) Chapter(ctx context.Context, provider nicobar.Provider, path string) (*nicobar.Chapter, error) {
	return r.ChapterFn(ctx, provider, path)
}

func (r *MangaReader) ChapterList(ctx context.Context, provider nicobar.Provider, path string) (*nicobar.ChapterList, error) {
	return r.ChapterListFn(ctx, provider, path)
}

func (r *MangaReader) MangaList(ctx context.Context, provider nicobar.Provider) (*nicobar.MangaList, error) {
	return r.MangaListFn(ctx, provider)
}
