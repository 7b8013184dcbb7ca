// Package openai classifies stories using an OpenAI-compatible chat API.
package openai

import (
	"context"
	"math"

	"github.com/fwojciec/hnlist"
	"github.com/sashabaranov/go-openai"
)

// Defaults target NVIDIA's hosted OpenAI-compatible endpoint.
const (
	DefaultBaseURL = "https://integrate.api.nvidia.com/v1"
	DefaultModel   = "z-ai/glm5"
)

// maxTokens bounds the reply; YES or NO fits comfortably.
const maxTokens = 5

// temperature is the lowest value the client sends. A zero Temperature is
// dropped from the request by omitempty and the endpoint default applies.
const temperature = math.SmallestNonzeroFloat32

// Ensure Classifier implements hnlist.Classifier at compile time.
var _ hnlist.Classifier = (*Classifier)(nil)

// Config configures a Classifier.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Classifier implements hnlist.Classifier using a chat completion endpoint.
type Classifier struct {
	client *openai.Client
	model  string
}

// NewClassifier creates a new Classifier. Empty BaseURL and Model fields
// select DefaultBaseURL and DefaultModel.
func NewClassifier(cfg Config) (*Classifier, error) {
	if cfg.APIKey == "" {
		return nil, hnlist.Errorf(hnlist.EINVALID, "API key required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	cc := openai.DefaultConfig(cfg.APIKey)
	cc.BaseURL = cfg.BaseURL
	return &Classifier{client: openai.NewClientWithConfig(cc), model: cfg.Model}, nil
}

// Classify asks the model whether story is about topic.
func (c *Classifier) Classify(ctx context.Context, story *hnlist.Story, topic string) (bool, error) {
	if story == nil || story.Title == "" {
		return false, hnlist.Errorf(hnlist.EINVALID, "story title required")
	}
	if topic == "" {
		return false, hnlist.Errorf(hnlist.EINVALID, "topic required")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: hnlist.ClassifyPrompt(story, topic)},
		},
		Temperature: temperature,
		TopP:        1,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return false, err
	}
	if len(resp.Choices) == 0 {
		return false, hnlist.Errorf(hnlist.EINTERNAL, "chat completion returned no choices")
	}

	return hnlist.ParseVerdict(resp.Choices[0].Message.Content), nil
}
