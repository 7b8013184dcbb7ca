// Package gemini classifies stories using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/hnlist"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// maxOutputTokens bounds the reply. Thinking is disabled so the budget is
// spent on the answer.
const maxOutputTokens = 5

// Ensure Classifier implements hnlist.Classifier at compile time.
var _ hnlist.Classifier = (*Classifier)(nil)

// Classifier implements hnlist.Classifier using Google Gemini.
type Classifier struct {
	client *genai.Client
	model  string
}

// NewClassifier creates a new Classifier. An empty model selects DefaultModel.
func NewClassifier(client *genai.Client, model string) *Classifier {
	if model == "" {
		model = DefaultModel
	}
	return &Classifier{client: client, model: model}
}

// Classify asks the model whether story is about topic.
func (c *Classifier) Classify(ctx context.Context, story *hnlist.Story, topic string) (bool, error) {
	if story == nil || story.Title == "" {
		return false, hnlist.Errorf(hnlist.EINVALID, "story title required")
	}
	if topic == "" {
		return false, hnlist.Errorf(hnlist.EINVALID, "topic required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: hnlist.ClassifyPrompt(story, topic)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return false, err
	}
	if result == nil {
		return false, hnlist.Errorf(hnlist.EINTERNAL, "gemini returned nil result")
	}

	return hnlist.ParseVerdict(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for classification calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	thinking := int32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You classify Hacker News stories by topic. Answer with a single word: YES or NO.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
		ThinkingConfig:  &genai.ThinkingConfig{ThinkingBudget: &thinking},
	}
}
