package fs

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/hnlist"
)

// Markers delimit the generated table in a README.
const (
	TableStart = "<!-- HN_TABLE_START -->"
	TableEnd   = "<!-- HN_TABLE_END -->"
)

const updatedPrefix = "_Last updated: "

// Hash comments record the xxhash of the table written between the markers.
const (
	hashPrefix = "<!-- HN_TABLE_HASH:"
	hashSuffix = " -->"
)

// ReadmeUpdater replaces the generated table section of a README file.
type ReadmeUpdater struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewReadmeUpdater creates a new ReadmeUpdater.
func NewReadmeUpdater() *ReadmeUpdater {
	return &ReadmeUpdater{Now: time.Now}
}

// Update writes table between the markers of the README at path, preceded
// by a hash comment and followed by a last-updated line. It reports whether
// the file changed; when the stored hash matches the new table the file is
// left in place with its original timestamp. Returns EINVALID if the markers
// are missing or out of order.
func (u *ReadmeUpdater) Update(path, table string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, hnlist.Errorf(hnlist.ENOTFOUND, "README %q not found", path)
	} else if err != nil {
		return false, err
	}
	content := string(data)

	before, rest, ok := strings.Cut(content, TableStart)
	if !ok {
		return false, hnlist.Errorf(hnlist.EINVALID, "README missing table markers")
	}
	current, after, ok := strings.Cut(rest, TableEnd)
	if !ok {
		return false, hnlist.Errorf(hnlist.EINVALID, "README missing table markers")
	}

	hash := ComputeHash(strings.TrimSpace(table))
	if storedHash(current) == hash {
		return false, nil
	}

	now := time.Now
	if u.Now != nil {
		now = u.Now
	}

	var sb strings.Builder
	sb.WriteString(before)
	sb.WriteString(TableStart)
	sb.WriteString("\n")
	sb.WriteString(hashPrefix)
	sb.WriteString(hash)
	sb.WriteString(hashSuffix)
	sb.WriteString("\n")
	sb.WriteString(table)
	sb.WriteString("\n\n")
	sb.WriteString(updatedPrefix)
	sb.WriteString(now().UTC().Format("2006-01-02T15:04:05Z"))
	sb.WriteString("_\n")
	sb.WriteString(TableEnd)
	sb.WriteString(after)

	if err := WriteFileAtomic(path, []byte(sb.String())); err != nil {
		return false, err
	}
	return true, nil
}

// storedHash returns the table hash recorded in a section, or "" if the
// section has none.
func storedHash(section string) string {
	for _, l := range strings.Split(section, "\n") {
		l = strings.TrimSpace(l)
		if v, ok := strings.CutPrefix(l, hashPrefix); ok {
			return strings.TrimSuffix(v, hashSuffix)
		}
	}
	return ""
}
