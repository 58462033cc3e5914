package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/nicobar"
	ngin "github.com/fwojciec/nicobar/gin"
	"github.com/fwojciec/nicobar/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Articles     *pipeline.Articles
	Manga        nicobar.MangaReader
	Trains       nicobar.TrainBoard
	GameCards    *pipeline.GameCards
	CardImporter nicobar.GameCardImporter
	Server       *ngin.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" type:"path" help:"Config file (default $NICOBAR_CONFIG or ~/.config/nicobar/config.yaml)"`

	Serve   ServeCmd   `cmd:"" help:"Serve the HTTP API"`
	Article ArticleCmd `cmd:"" help:"Generate and browse AI-written articles"`
	Manga   MangaCmd   `cmd:"" help:"Read manga chapters from a provider"`
	Train   TrainCmd   `cmd:"" help:"Show a station departure or arrival board"`
	Cards   CardsCmd   `cmd:"" help:"Browse and import the game card catalog"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address, overrides server.addr"`
}

// ArticleCmd groups the "article" subcommands.
type ArticleCmd struct {
	Generate ArticleGenerateCmd `cmd:"" help:"Ask the AI backend for a new article"`
	List     ArticleListCmd     `cmd:"" help:"List stored articles, newest first"`
	Show     ArticleShowCmd     `cmd:"" help:"Show a stored article"`
}

// ArticleGenerateCmd is the "article generate" subcommand.
type ArticleGenerateCmd struct {
	Task     string `required:"" help:"What the article should do"`
	Topic    string `required:"" help:"Article topic"`
	Style    string `required:"" help:"Writing style"`
	Tone     string `required:"" help:"Writing tone"`
	Audience string `required:"" help:"Target audience"`
	Length   string `required:"" help:"Desired length"`
	NoSave   bool   `help:"Print the article without storing it"`
}

// ArticleListCmd is the "article list" subcommand.
type ArticleListCmd struct {
	Tag    string `help:"Only articles with this tag"`
	Offset int    `help:"Skip this many articles"`
	Limit  int    `help:"Return at most this many articles"`
}

// ArticleShowCmd is the "article show" subcommand.
type ArticleShowCmd struct {
	ID string `arg:"" help:"Article ID"`
}

// MangaCmd groups the "manga" subcommands.
type MangaCmd struct {
	Chapter  MangaChapterCmd  `cmd:"" help:"Show the pages of a chapter"`
	Chapters MangaChaptersCmd `cmd:"" help:"List the chapters of a manga"`
	List     MangaListCmd     `cmd:"" help:"List the mangas of a provider"`
}

// MangaChapterCmd is the "manga chapter" subcommand.
type MangaChapterCmd struct {
	Provider string `arg:"" help:"Provider (TCBScans, NIFTeam; any case)"`
	Path     string `arg:"" help:"Chapter path or URL on the provider site"`
}

// MangaChaptersCmd is the "manga chapters" subcommand.
type MangaChaptersCmd struct {
	Provider string `arg:"" help:"Provider (TCBScans, NIFTeam; any case)"`
	Path     string `arg:"" help:"Manga path or URL on the provider site"`
}

// MangaListCmd is the "manga list" subcommand.
type MangaListCmd struct {
	Provider string `arg:"" help:"Provider (TCBScans, NIFTeam; any case)"`
}

// TrainCmd groups the "train" subcommands.
type TrainCmd struct {
	Departures TrainDeparturesCmd `cmd:"" help:"Show departures from a station"`
	Arrivals   TrainArrivalsCmd   `cmd:"" help:"Show arrivals at a station"`
}

// TrainDeparturesCmd is the "train departures" subcommand.
type TrainDeparturesCmd struct {
	PlaceID string `arg:"" help:"Station place ID"`
}

// TrainArrivalsCmd is the "train arrivals" subcommand.
type TrainArrivalsCmd struct {
	PlaceID string `arg:"" help:"Station place ID"`
}

// CardsCmd groups the "cards" subcommands.
type CardsCmd struct {
	List   CardsListCmd   `cmd:"" help:"Search the card catalog"`
	Show   CardsShowCmd   `cmd:"" help:"Show a card"`
	Import CardsImportCmd `cmd:"" help:"Insert or replace cards from a JSON file"`
}

// CardsListCmd is the "cards list" subcommand.
type CardsListCmd struct {
	Keyword    string   `short:"k" help:"Match name or text"`
	Feature    string   `help:"Match feature"`
	Type       []string `help:"Card types (repeatable)"`
	Set        []string `help:"Card sets (repeatable)"`
	Rarity     []string `help:"Rarities (repeatable)"`
	Color      []string `help:"Colors (repeatable)"`
	Attributes []string `name:"attribute" help:"Attributes (repeatable)"`
	Offset     int      `help:"Skip this many cards"`
	Limit      int      `help:"Return at most this many cards"`
}

// CardsShowCmd is the "cards show" subcommand.
type CardsShowCmd struct {
	ID string `arg:"" help:"Card ID"`
}

// CardsImportCmd is the "cards import" subcommand.
type CardsImportCmd struct {
	File string `arg:"" type:"existingfile" help:"JSON array of cards"`
}
