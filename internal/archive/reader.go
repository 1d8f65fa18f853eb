// Package archive reads the Twitter export's tweets.js file. The export is
// not plain JSON: a JavaScript assignment preamble
// ("window.YTD.tweets.part0 = ") precedes the array payload, so the reader
// locates the array start before decoding.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrArchiveNotFound indicates the tweets file does not exist.
	ErrArchiveNotFound = errors.New("archive file not found")

	// ErrArchiveParse indicates the tweets file content could not be parsed.
	ErrArchiveParse = errors.New("archive file could not be parsed")
)

// ReadArchive loads and parses the tweets file at path, returning the
// tweets in archive order.
func ReadArchive(path string) ([]TweetWrapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, path)
		}
		return nil, fmt.Errorf("failed to read archive file %s: %w", path, err)
	}

	start := strings.IndexByte(string(data), '[')
	if start < 0 {
		return nil, fmt.Errorf("%w: no JSON array found in %s", ErrArchiveParse, path)
	}

	var tweets []TweetWrapper
	if err := json.Unmarshal(data[start:], &tweets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveParse, err)
	}

	return tweets, nil
}
