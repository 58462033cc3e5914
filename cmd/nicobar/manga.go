package main

import (
	"github.com/fwojciec/nicobar"
)

// Run executes the manga chapter command.
func (c *MangaChapterCmd) Run(deps *Dependencies) error {
	provider, err := nicobar.ParseProvider(c.Provider)
	if err != nil {
		return reportError(deps, err)
	}
	chapter, err := deps.Manga.Chapter(deps.Ctx, provider, c.Path)
	if err != nil {
		return reportError(deps, err)
	}
	return writeJSON(deps.Stdout, chapter)
}

// Run executes the manga chapters command.
func (c *MangaChaptersCmd) Run(deps *Dependencies) error {
	provider, err := nicobar.ParseProvider(c.Provider)
	if err != nil {
		return reportError(deps, err)
	}
	list, err := deps.Manga.ChapterList(deps.Ctx, provider, c.Path)
	if err != nil {
		return reportError(deps, err)
	}
	return writeJSON(deps.Stdout, list)
}

// Run executes the manga list command.
func (c *MangaListCmd) Run(deps *Dependencies) error {
	provider, err := nicobar.ParseProvider(c.Provider)
	if err != nil {
		return reportError(deps, err)
	}
	list, err := deps.Manga.MangaList(deps.Ctx, provider)
	if err != nil {
		return reportError(deps, err)
	}
	return writeJSON(deps.Stdout, list)
}
