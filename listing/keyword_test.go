package listing_test

import (
	"context"
	"testing"

	"github.com/fwojciec/hnlist"
	"github.com/fwojciec/hnlist/listing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordFilter_Filter(t *testing.T) {
	t.Parallel()

	stories := []*hnlist.Story{
		{ID: "1", Title: "Show HN: A PowerPoint generator", URL: "https://example.com/gen"},
		{ID: "2", Title: "Rust 2.0 released", URL: "https://example.com/rust"},
		{ID: "3", Title: "Export to PPTX from the terminal", URL: "https://example.com/cli"},
		{ID: "4", Title: "A new tool", URL: "https://example.com/slides"},
	}

	t.Run("matches default keywords case-insensitively", func(t *testing.T) {
		t.Parallel()

		f, err := listing.NewKeywordFilter(hnlist.DefaultProfile())
		require.NoError(t, err)

		matches, err := f.Filter(context.Background(), stories)

		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, "1", matches[0].ID)
		assert.Equal(t, "3", matches[1].ID)
		assert.Equal(t, "4", matches[2].ID)
		for _, m := range matches {
			assert.Equal(t, hnlist.MatchRegex, m.MatchMode)
		}
	})

	t.Run("flags highlighted matches", func(t *testing.T) {
		t.Parallel()

		f, err := listing.NewKeywordFilter(hnlist.DefaultProfile())
		require.NoError(t, err)

		matches, err := f.Filter(context.Background(), stories)

		require.NoError(t, err)
		assert.False(t, matches[0].Highlighted)
		assert.True(t, matches[1].Highlighted)
	})

	t.Run("uses custom keywords", func(t *testing.T) {
		t.Parallel()

		f, err := listing.NewKeywordFilter(&hnlist.FilterProfile{Keywords: []string{"rust"}})
		require.NoError(t, err)

		matches, err := f.Filter(context.Background(), stories)

		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "2", matches[0].ID)
		assert.False(t, matches[0].Highlighted)
	})

	t.Run("does not modify input stories", func(t *testing.T) {
		t.Parallel()

		f, err := listing.NewKeywordFilter(hnlist.DefaultProfile())
		require.NoError(t, err)

		matches, err := f.Filter(context.Background(), stories)
		require.NoError(t, err)
		matches[0].Title = "changed"

		assert.Equal(t, "Show HN: A PowerPoint generator", stories[0].Title)
	})
}

func TestNewKeywordFilter(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		_, err := listing.NewKeywordFilter(&hnlist.FilterProfile{Keywords: []string{"("}})

		assert.Equal(t, hnlist.EINVALID, hnlist.ErrorCode(err))
	})

	t.Run("rejects invalid highlight", func(t *testing.T) {
		t.Parallel()

		_, err := listing.NewKeywordFilter(&hnlist.FilterProfile{Keywords: []string{"go"}, Highlight: "["})

		assert.Equal(t, hnlist.EINVALID, hnlist.ErrorCode(err))
	})

	t.Run("rejects empty keyword list", func(t *testing.T) {
		t.Parallel()

		_, err := listing.NewKeywordFilter(&hnlist.FilterProfile{Name: "empty"})

		assert.Equal(t, hnlist.EINVALID, hnlist.ErrorCode(err))
	})
}
