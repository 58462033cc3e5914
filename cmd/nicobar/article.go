package main

import (
	"fmt"

	"github.com/fwojciec/nicobar"
)

// Run executes the article generate command.
func (c *ArticleGenerateCmd) Run(deps *Dependencies) error {
	prompt := nicobar.ArticlePrompt{
		Task:     c.Task,
		Topic:    c.Topic,
		Style:    c.Style,
		Tone:     c.Tone,
		Audience: c.Audience,
		Length:   c.Length,
	}

	if c.NoSave {
		article, err := deps.Articles.GenerateUnsaved(deps.Ctx, prompt)
		if err != nil {
			return reportError(deps, err)
		}
		return writeJSON(deps.Stdout, article)
	}

	article, err := deps.Articles.Generate(deps.Ctx, prompt)
	if err != nil {
		return reportError(deps, err)
	}
	return writeJSON(deps.Stdout, article)
}

// Run executes the article list command.
func (c *ArticleListCmd) Run(deps *Dependencies) error {
	filter := nicobar.ArticleFilter{Offset: c.Offset, Limit: c.Limit}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}

	articles, err := deps.Articles.Find(deps.Ctx, filter)
	if nicobar.ErrorCode(err) == nicobar.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'nicobar article generate' to create one.")
		return nil
	} else if err != nil {
		return reportError(deps, err)
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", a.ID, a.Date.Format("2006-01-02"), a.Title)
	}
	return nil
}

// Run executes the article show command.
func (c *ArticleShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.Get(deps.Ctx, c.ID)
	if err != nil {
		return reportError(deps, err)
	}
	return writeJSON(deps.Stdout, article)
}
