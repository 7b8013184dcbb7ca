package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hnlist"
	"github.com/fwojciec/hnlist/gemini"
	"github.com/fwojciec/hnlist/openai"
	"github.com/fwojciec/hnlist/rod"
	"github.com/fwojciec/hnlist/scrape"
	hnslog "github.com/fwojciec/hnlist/slog"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error; the environment may be set directly.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run constructs them from
	// the parsed flags.
	Renderer   hnlist.Renderer
	Classifier hnlist.Classifier

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now: time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hnlist"),
		kong.Description("Extract, merge and filter Hacker News front-page listings."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hnlist --help' to see available commands")
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

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.Logger = logger
	}

	// Wire command-specific dependencies based on command
	switch strings.Fields(kongCtx.Command())[0] {
	case "extract":
		var extractor hnlist.ListingExtractor = &scrape.Extractor{BaseURL: cli.Extract.BaseURL}
		if logger != nil {
			extractor = hnslog.NewLoggingExtractor(extractor, logger)
		}
		deps.Extractor = extractor

		if cli.Extract.Render {
			renderer := m.Renderer
			if renderer == nil {
				r, err := rod.NewRenderer()
				if err != nil {
					fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
					return fmt.Errorf("failed to start browser: %w", err)
				}
				renderer = r
			}
			if logger != nil {
				renderer = hnslog.NewLoggingRenderer(renderer, logger)
			}
			defer renderer.Close()
			deps.Renderer = renderer
		}

	case "filter":
		if cli.Filter.Mode == string(hnlist.MatchLLM) {
			classifier := m.Classifier
			if classifier == nil {
				c, err := newClassifier(ctx, &cli.Filter, stderr)
				if err != nil {
					return err
				}
				classifier = c
			}
			if logger != nil {
				classifier = hnslog.NewLoggingClassifier(classifier, logger)
			}
			deps.Classifier = classifier
		}
	}

	return kongCtx.Run(deps)
}

// newClassifier connects to the LLM provider selected by the filter flags.
func newClassifier(ctx context.Context, c *FilterCmd, stderr io.Writer) (hnlist.Classifier, error) {
	switch c.Provider {
	case providerOpenAI:
		if c.NvidiaAPIKey == "" {
			fmt.Fprintln(stderr, "NVIDIA_API_KEY environment variable not set. Get an API key at https://build.nvidia.com")
			return nil, fmt.Errorf("NVIDIA_API_KEY not set")
		}
		classifier, err := openai.NewClassifier(openai.Config{
			APIKey:  c.NvidiaAPIKey,
			BaseURL: c.OpenAIBaseURL,
			Model:   c.Model,
		})
		if err != nil {
			return nil, err
		}
		return classifier, nil
	case providerGemini:
		if c.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		model := c.Model
		if model == "" {
			model = gemini.DefaultModel
		}
		return gemini.NewClassifier(client, model), nil
	default:
		return nil, hnlist.Errorf(hnlist.EINVALID, "unknown provider %q", c.Provider)
	}
}
