package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/hnlist"
	main "github.com/fwojciec/hnlist/cmd/hnlist"
	"github.com/fwojciec/hnlist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filterInput = `{"generated_at": "2024-01-01T00:00:00Z", "results": [
	{"id": "1", "title": "Show HN: A PPTX renderer", "url": "https://example.com/a"},
	{"id": "2", "title": "Postgres internals", "url": "https://example.com/b"},
	{"id": "3", "title": "Claude writes Go", "url": "https://example.com/c"}
]}`

func decodeMatches(t *testing.T, data []byte) *hnlist.MatchListing {
	t.Helper()
	var got hnlist.MatchListing
	require.NoError(t, json.Unmarshal(data, &got))
	return &got
}

func TestFilterCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("selects keyword matches with default profile", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "listing.json", filterInput)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.FilterCmd{In: in, Mode: "regex"}
		err := cmd.Run(newDeps(stdout, stderr))

		require.NoError(t, err)
		got := decodeMatches(t, stdout.Bytes())
		require.Len(t, got.Results, 2)
		assert.Equal(t, "1", got.Results[0].ID)
		assert.True(t, got.Results[0].Highlighted)
		assert.Equal(t, "3", got.Results[1].ID)
		assert.False(t, got.Results[1].Highlighted)
		assert.Equal(t, "2024-01-01T00:00:00Z", got.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))
	})

	t.Run("keywords flag overrides profile", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "listing.json", filterInput)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.FilterCmd{In: in, Mode: "regex", Keywords: "postgres | "}
		err := cmd.Run(newDeps(stdout, stderr))

		require.NoError(t, err)
		got := decodeMatches(t, stdout.Bytes())
		require.Len(t, got.Results, 1)
		assert.Equal(t, "2", got.Results[0].ID)
	})

	t.Run("rejects keywords flag without keywords", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "listing.json", filterInput)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.FilterCmd{In: in, Mode: "regex", Keywords: " | "}
		err := cmd.Run(newDeps(stdout, stderr))

		assert.Equal(t, hnlist.EINVALID, hnlist.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("loads named profile from file", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "listing.json", filterInput)
		profile := writeFile(t, "profiles.yaml", `profiles:
  - name: slides
    keywords: [pptx]
  - name: databases
    keywords: [postgres, sqlite]
    highlight: internals
`)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.FilterCmd{In: in, Mode: "regex", Profile: profile, ProfileName: "databases"}
		err := cmd.Run(newDeps(stdout, stderr))

		require.NoError(t, err, stderr.String())
		got := decodeMatches(t, stdout.Bytes())
		require.Len(t, got.Results, 1)
		assert.Equal(t, "2", got.Results[0].ID)
		assert.True(t, got.Results[0].Highlighted)
	})

	t.Run("classifies with llm mode", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "listing.json", filterInput)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, story *hnlist.Story, topic string) (bool, error) {
				assert.Equal(t, hnlist.DefaultTopic, topic)
				return story.ID == "2", nil
			},
		}

		cmd := &main.FilterCmd{In: in, Mode: "llm"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		got := decodeMatches(t, stdout.Bytes())
		require.Len(t, got.Results, 1)
		assert.Equal(t, "2", got.Results[0].ID)
		assert.Equal(t, hnlist.MatchLLM, got.Results[0].MatchMode)
	})

	t.Run("reports classifier failure", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "listing.json", filterInput)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, story *hnlist.Story, topic string) (bool, error) {
				return false, errors.New("quota exceeded")
			},
		}

		cmd := &main.FilterCmd{In: in, Mode: "llm"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: Internal error.\n", stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("llm mode requires classifier", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, "listing.json", filterInput)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.FilterCmd{In: in, Mode: "llm"}
		err := cmd.Run(newDeps(stdout, stderr))

		assert.Equal(t, hnlist.EINVALID, hnlist.ErrorCode(err))
	})
}
