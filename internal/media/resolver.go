// Package media locates a tweet's attachments in the local archive media
// folder and gates them by photo MIME type before upload.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver finds local media files for archived tweets. The export names
// each file "{tweetId}-{remoteFilename}", but the casing of the stored
// files is not reliable, so matching is case-insensitive.
type Resolver struct {
	dir string
}

func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve returns the path of the local file for the given tweet ID and
// remote filename. A miss is a normal outcome reported via the boolean,
// not an error; the error is reserved for the directory read itself.
func (r *Resolver) Resolve(postID, remoteFilename string) (string, bool, error) {
	expected := strings.ToLower(postID + "-" + remoteFilename)

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return "", false, fmt.Errorf("failed to read media directory %s: %w", r.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(entry.Name()) == expected {
			return filepath.Join(r.dir, entry.Name()), true, nil
		}
	}

	return "", false, nil
}
