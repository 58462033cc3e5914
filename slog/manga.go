package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nicobar"
)

// Ensure LoggingMangaReader implements nicobar.MangaReader.
var _ nicobar.MangaReader = (*LoggingMangaReader)(nil)

// LoggingMangaReader wraps a MangaReader with logging.
type LoggingMangaReader struct {
	next   nicobar.MangaReader
	logger *slog.Logger
}

// NewLoggingMangaReader creates a new LoggingMangaReader.
func NewLoggingMangaReader(next nicobar.MangaReader, logger *slog.Logger) *LoggingMangaReader {
	return &LoggingMangaReader{next: next, logger: logger}
}

func (r *LoggingMangaReader) Chapter(ctx context.Context, provider nicobar.Provider, path string) (chapter *nicobar.Chapter, err error) {
	defer func(begin time.Time) {
		pages := 0
		if chapter != nil {
			pages = len(chapter.Pages)
		}
		logResult(r.logger, "read chapter", begin, err, "provider", string(provider), "path", path, "pages", pages)
	}(time.Now())

	return r.next.Chapter(ctx, provider, path)
}

func (r *LoggingMangaReader) ChapterList(ctx context.Context, provider nicobar.Provider, path string) (list *nicobar.ChapterList, err error) {
	defer func(begin time.Time) {
		chapters := 0
		if list != nil {
			chapters = len(list.Chapters)
		}
		logResult(r.logger, "list chapters", begin, err, "provider", string(provider), "path", path, "chapters", chapters)
	}(time.Now())

	return r.next.ChapterList(ctx, provider, path)
}

func (r *LoggingMangaReader) MangaList(ctx context.Context, provider nicobar.Provider) (list *nicobar.MangaList, err error) {
	defer func(begin time.Time) {
		mangas := 0
		if list != nil {
			mangas = len(list.Mangas)
		}
		logResult(r.logger, "list mangas", begin, err, "provider", string(provider), "mangas", mangas)
	}(time.Now())

	return r.next.MangaList(ctx, provider)
}
