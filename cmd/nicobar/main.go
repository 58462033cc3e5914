package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nicobar"
	"github.com/fwojciec/nicobar/aitext"
	"github.com/fwojciec/nicobar/gemini"
	ngin "github.com/fwojciec/nicobar/gin"
	"github.com/fwojciec/nicobar/goldmark"
	"github.com/fwojciec/nicobar/goquery"
	"github.com/fwojciec/nicobar/htmltomarkdown"
	nhttp "github.com/fwojciec/nicobar/http"
	"github.com/fwojciec/nicobar/mongo"
	"github.com/fwojciec/nicobar/ollama"
	"github.com/fwojciec/nicobar/pipeline"
	nslog "github.com/fwojciec/nicobar/slog"
	"github.com/fwojciec/nicobar/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run(); --config overrides it.
	ConfigPath string

	// Getenv reads environment overrides.
	Getenv func(string) string

	// Config is the loaded configuration, available after Run() parses flags.
	Config *Config

	// Store implementations, for end-to-end testing. When nil, Run() opens
	// the configured database.
	ArticleService  nicobar.ArticleService
	GameCardService nicobar.GameCardService
	CardImporter    nicobar.GameCardImporter

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: DefaultConfigPath(os.Getenv),
		Getenv:     os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nicobar"),
		kong.Description("Aggregates AI-written articles, manga chapters, train boards and game cards."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nicobar --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())

	path := m.ConfigPath
	if cli.Config != "" {
		path = cli.Config
	}
	cfg, err := LoadConfig(path, cli.Config != "", m.Getenv)
	if err != nil {
		return fmt.Errorf("failed to load config %q: %w", path, err)
	}
	m.Config = cfg

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	deps.Logger = logger

	defer m.Close()

	opts := []nhttp.Option{
		nhttp.WithTimeout(cfg.HTTP.Timeout),
		nhttp.WithRateLimit(cfg.HTTP.RatePerSecond),
	}
	if cfg.HTTP.UserAgent != "" {
		opts = append(opts, nhttp.WithUserAgent(cfg.HTTP.UserAgent))
	}
	fetcher := nslog.NewLoggingFetcher(nhttp.NewFetcher(opts...), logger)

	deps.Manga = nslog.NewLoggingMangaReader(&pipeline.Manga{
		Fetcher:   fetcher,
		Extractor: goquery.NewMangaExtractor(goquery.NewDefaultRegistry()),
	}, logger)
	deps.Trains = &pipeline.Trains{
		Fetcher:   fetcher,
		Extractor: goquery.NewTrainExtractor(),
		BoardURL:  pipeline.DefaultBoardURL,
	}

	switch command[0] {
	case "manga", "train":
		return kongCtx.Run(deps)
	}

	if err := m.openStore(ctx, cfg.Database); err != nil {
		if cfg.Database.Driver == DriverSQLite {
			fmt.Fprintln(stderr, "Hint: Set NICOBAR_DB to use a different database path")
		}
		return err
	}
	articles := nslog.NewLoggingArticleService(m.ArticleService, logger)

	deps.Articles = &pipeline.Articles{Store: articles}
	deps.GameCards = &pipeline.GameCards{Store: m.GameCardService}
	deps.CardImporter = m.CardImporter

	needsAsker := command[0] == "serve" || (command[0] == "article" && len(command) > 1 && command[1] == "generate")
	if needsAsker {
		asker, dialect, err := m.newAsker(ctx, cfg.AI, logger, stderr)
		if err != nil {
			return err
		}
		deps.Articles.Asker = asker
		deps.Articles.Text = aitext.NewPipeline(dialect,
			aitext.WithConverter(htmltomarkdown.NewConverter()),
			aitext.WithFormatter(goldmark.NewFormatter()),
		)
	}

	if command[0] == "serve" {
		s := ngin.NewServer(logger)
		s.Addr = cfg.Server.Addr
		s.CORSOrigin = cfg.Server.CORSOrigin
		s.ArticleReader = deps.Articles
		s.ArticleGenerator = deps.Articles
		s.MangaReader = deps.Manga
		s.TrainBoard = deps.Trains
		s.GameCardService = m.GameCardService
		deps.Server = s
	}

	return kongCtx.Run(deps)
}

// openStore opens the configured database unless the services were injected.
func (m *Main) openStore(ctx context.Context, cfg DatabaseConfig) error {
	if m.ArticleService != nil && m.GameCardService != nil {
		return nil
	}

	switch cfg.Driver {
	case DriverMongo:
		db := mongo.NewDB(cfg.MongoURI, cfg.MongoDatabase)
		if err := db.Open(ctx); err != nil {
			return fmt.Errorf("failed to open mongodb database %q: %w", cfg.MongoDatabase, err)
		}
		m.closers = append(m.closers, db)
		cards := mongo.NewGameCardService(db)
		m.ArticleService = mongo.NewArticleService(db)
		m.GameCardService = cards
		m.CardImporter = cards
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		db := sqlite.NewDB(cfg.Path)
		if err := db.Open(ctx); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cfg.Path, err)
		}
		m.closers = append(m.closers, db)
		cards := sqlite.NewGameCardService(db)
		m.ArticleService = sqlite.NewArticleService(db)
		m.GameCardService = cards
		m.CardImporter = cards
	}
	return nil
}

// newAsker connects the configured AI backend and returns the response
// dialect it answers in.
func (m *Main) newAsker(ctx context.Context, cfg AIConfig, logger *slog.Logger, stderr io.Writer) (nicobar.Asker, nicobar.ResponseDialect, error) {
	if cfg.Backend == BackendOllama {
		fetcher := nslog.NewLoggingFetcher(nhttp.NewFetcher(nhttp.WithTimeout(cfg.Timeout)), logger)
		asker := ollama.NewAsker(fetcher, cfg.OllamaHost, cfg.Model)
		return nslog.NewLoggingAsker(asker, BackendOllama, logger), nicobar.RawJSONDialect, nil
	}

	if cfg.APIKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, nicobar.ResponseDialect{}, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, nicobar.ResponseDialect{}, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	asker := gemini.NewAsker(client, cfg.Model)
	return nslog.NewLoggingAsker(asker, BackendGemini, logger), nicobar.FencedDialect, nil
}

func newLogger(cfg LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
