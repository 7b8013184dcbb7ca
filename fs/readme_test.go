package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/hnlist"
	"github.com/fwojciec/hnlist/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
}

func TestReadmeUpdater_Update(t *testing.T) {
	t.Parallel()

	t.Run("replaces content between markers", func(t *testing.T) {
		t.Parallel()

		// Given a README with markers
		path := writeFile(t, "README.md", "# Title\n\n<!-- HN_TABLE_START -->\nold\n<!-- HN_TABLE_END -->\n\nFooter\n")
		u := &fs.ReadmeUpdater{Now: fixedNow}

		// When I update the table
		changed, err := u.Update(path, "| a |")

		// Then the section is replaced and stamped
		require.NoError(t, err)
		assert.True(t, changed)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		expected := "# Title\n\n<!-- HN_TABLE_START -->\n" +
			"<!-- HN_TABLE_HASH:" + fs.ComputeHash("| a |") + " -->\n" +
			"| a |\n\n_Last updated: 2024-03-01T08:30:00Z_\n<!-- HN_TABLE_END -->\n\nFooter\n"
		assert.Equal(t, expected, string(data))
	})

	t.Run("skips write when stored hash matches table", func(t *testing.T) {
		t.Parallel()

		// Given a README whose stored hash matches the table
		path := writeFile(t, "README.md", "<!-- HN_TABLE_START -->\n<!-- HN_TABLE_HASH:"+fs.ComputeHash("| a |")+" -->\n| a |\n\n_Last updated: 2020-01-01T00:00:00Z_\n<!-- HN_TABLE_END -->\n")
		u := &fs.ReadmeUpdater{Now: fixedNow}

		// When I update with the same table
		changed, err := u.Update(path, "| a |")

		// Then nothing changes, including the timestamp
		require.NoError(t, err)
		assert.False(t, changed)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "2020-01-01T00:00:00Z")
	})

	t.Run("rewrites table when stored hash differs", func(t *testing.T) {
		t.Parallel()

		// Given a README whose stored hash belongs to an older table
		path := writeFile(t, "README.md", "<!-- HN_TABLE_START -->\n<!-- HN_TABLE_HASH:"+fs.ComputeHash("| old |")+" -->\n| a |\n\n_Last updated: 2020-01-01T00:00:00Z_\n<!-- HN_TABLE_END -->\n")
		u := &fs.ReadmeUpdater{Now: fixedNow}

		// When I update with a table matching the visible text
		changed, err := u.Update(path, "| a |")

		// Then the stored hash decides and the section is rewritten
		require.NoError(t, err)
		assert.True(t, changed)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<!-- HN_TABLE_HASH:"+fs.ComputeHash("| a |")+" -->")
		assert.Contains(t, string(data), "2024-03-01T08:30:00Z")
		assert.NotContains(t, string(data), "2020-01-01")
	})

	t.Run("writes table when no hash is stored", func(t *testing.T) {
		t.Parallel()

		// Given a README holding the table text but no hash
		path := writeFile(t, "README.md", "<!-- HN_TABLE_START -->\n| a |\n<!-- HN_TABLE_END -->\n")
		u := &fs.ReadmeUpdater{Now: fixedNow}

		// When I update with the same table
		changed, err := u.Update(path, "| a |")

		// Then the hash is recorded
		require.NoError(t, err)
		assert.True(t, changed)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "HN_TABLE_HASH:")
	})

	t.Run("rejects README without markers", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "README.md", "# Title\n")
		u := fs.NewReadmeUpdater()

		_, err := u.Update(path, "| a |")

		assert.Equal(t, hnlist.EINVALID, hnlist.ErrorCode(err))
		assert.Equal(t, "README missing table markers", hnlist.ErrorMessage(err))
	})

	t.Run("rejects end marker before start marker", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "README.md", "<!-- HN_TABLE_END -->\n<!-- HN_TABLE_START -->\n")
		u := fs.NewReadmeUpdater()

		_, err := u.Update(path, "| a |")

		assert.Equal(t, hnlist.EINVALID, hnlist.ErrorCode(err))
	})

	t.Run("reports missing README as not found", func(t *testing.T) {
		t.Parallel()

		u := fs.NewReadmeUpdater()

		_, err := u.Update(filepath.Join(t.TempDir(), "README.md"), "| a |")

		assert.Equal(t, hnlist.ENOTFOUND, hnlist.ErrorCode(err))
	})
}
