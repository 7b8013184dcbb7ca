package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/hnlist"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Now        func() time.Time
	Extractor  hnlist.ListingExtractor
	Renderer   hnlist.Renderer
	Classifier hnlist.Classifier

	// Logger is set under --debug.
	Logger *slog.Logger
}

// now returns the current time, falling back to time.Now.
func (d *Dependencies) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// formatRSS selects RSS output for the extract command; JSON is the default.
const formatRSS = "rss"

// Classifier providers for the filter command.
const (
	providerGemini = "gemini"
	providerOpenAI = "openai"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log service calls to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract stories from saved front-page HTML files"`
	Merge   MergeCmd   `cmd:"" help:"Merge listing files, dropping duplicate stories"`
	Filter  FilterCmd  `cmd:"" help:"Select stories by keyword or LLM classification"`
	Readme  ReadmeCmd  `cmd:"" help:"Write filter results into a README table"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files       []string `arg:"" name:"files" help:"Saved front-page HTML files"`
	Render      bool     `help:"Render pages in headless Chrome before extracting"`
	Format      string   `enum:"json,rss" default:"json" help:"Output format (json, rss)"`
	Out         string   `short:"o" help:"Output file (default stdout)"`
	BaseURL     string   `name:"base-url" env:"HNLIST_BASE_URL" default:"https://news.ycombinator.com/" help:"URL relative links resolve against"`
	Concurrency int      `short:"c" default:"4" help:"Files extracted in parallel"`
}

// MergeCmd is the "merge" subcommand.
type MergeCmd struct {
	Files []string `arg:"" name:"files" help:"Listing files (JSON, or RSS with .xml/.rss extension)"`
	Out   string   `short:"o" help:"Output file (default stdout)"`
}

// FilterCmd is the "filter" subcommand.
type FilterCmd struct {
	In            string  `required:"" help:"Listing file to filter"`
	Out           string  `short:"o" help:"Output file (default stdout)"`
	Mode          string  `enum:"regex,llm" default:"regex" help:"Match mode (regex, llm)"`
	Provider      string  `enum:"gemini,openai" default:"gemini" help:"LLM provider for --mode=llm (gemini, openai)"`
	Model         string  `help:"LLM model (provider default when empty)"`
	Profile       string  `type:"path" help:"YAML or JSON filter profile file"`
	ProfileName   string  `name:"profile-name" help:"Profile to use from the profile file (first when empty)"`
	Keywords      string  `help:"Pipe-separated keywords overriding the profile"`
	RPS           float64 `name:"rps" default:"2" help:"Classifier requests per second (0 for unlimited)"`
	GeminiAPIKey  string  `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	NvidiaAPIKey  string  `name:"nvidia-api-key" env:"NVIDIA_API_KEY,NVAPI_KEY" help:"API key for the OpenAI-compatible endpoint"`
	OpenAIBaseURL string  `name:"openai-base-url" default:"https://integrate.api.nvidia.com/v1" help:"OpenAI-compatible endpoint"`
}

// ReadmeCmd is the "readme" subcommand.
type ReadmeCmd struct {
	Input  string `required:"" help:"Filter result file"`
	Readme string `type:"path" default:"README.md" help:"README file with table markers"`
	Limit  int    `default:"20" help:"Maximum table rows"`
}
