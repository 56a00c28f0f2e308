package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"studyhall"
	"studyhall/cache"
	"studyhall/etree"
	"studyhall/excelize"
	"studyhall/gemini"
	"studyhall/goquery"
	studyhttp "studyhall/http"
	"studyhall/pdf"
	studyslog "studyhall/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Gemini model name. Set before calling Run().
	Model string

	// Generator used by commands; exposed for end-to-end testing.
	Generator studyhall.Generator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Model: defaultModel(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Populate the environment from .env when present.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("studyhall"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'studyhall --help' to see available commands")
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

	logger := newLogger(stderr, cli.Verbose)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	m.Generator = cache.NewGenerator(
		studyslog.NewLoggingGenerator(gemini.NewGenerator(client, m.Model), logger),
	)
	deps.Generator = m.Generator

	fetcher := studyslog.NewLoggingFetcher(studyhttp.NewFetcher(), logger)
	deps.Router = newRouter(fetcher)

	return kongCtx.Run(deps)
}

// newRouter wires the extractor for every supported upload type.
func newRouter(fetcher studyhall.Fetcher) *studyhall.Router {
	router := studyhall.NewRouter(fetcher, goquery.NewPageExtractor())
	router.Register(".txt", studyhall.NewTextExtractor())
	router.Register(".pdf", pdf.NewExtractor())
	router.Register(".docx", etree.NewDocxExtractor())
	router.Register(".pptx", etree.NewPptxExtractor())
	router.Register(".xlsx", excelize.NewExtractor())
	return router
}

// newLogger routes operational logs to stderr. Info-level operation
// logs only appear with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultModel() string {
	if model := os.Getenv("STUDYHALL_MODEL"); model != "" {
		return model
	}
	return gemini.DefaultModel
}
