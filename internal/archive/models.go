package archive

import "strings"

// TweetWrapper mirrors the export's outer object; each array element wraps
// the tweet record under a "tweet" key.
type TweetWrapper struct {
	Tweet Tweet `json:"tweet"`
}

// Tweet represents a single tweet record from the Twitter archive export.
// Only the fields the migration consumes are decoded.
type Tweet struct {
	IDStr            string            `json:"id_str"`                      // Unique tweet identifier
	FullText         string            `json:"full_text"`                   // Untruncated tweet text (newer exports)
	LegacyText       string            `json:"text"`                        // Truncated text field (older exports)
	CreatedAt        string            `json:"created_at"`                  // e.g. "Mon Jan 01 12:00:00 +0000 2024"
	ExtendedEntities *ExtendedEntities `json:"extended_entities,omitempty"` // Attached media, if any
}

// ExtendedEntities holds the tweet's attached media entities.
type ExtendedEntities struct {
	Media []MediaEntity `json:"media"`
}

// MediaEntity describes one attached media item.
type MediaEntity struct {
	Type          string `json:"type"`            // "photo", "video", "animated_gif"
	MediaURLHTTPS string `json:"media_url_https"` // Remote URL; basename matches the local archive copy
}

// Text returns the tweet body, preferring full_text over the legacy
// truncated text field.
func (t Tweet) Text() string {
	if t.FullText != "" {
		return t.FullText
	}
	return t.LegacyText
}

// PhotoFilenames returns the remote filenames of the tweet's photo
// attachments in their original order. Non-photo media are excluded by
// policy (video and GIF migration is unsupported).
func (t Tweet) PhotoFilenames() []string {
	if t.ExtendedEntities == nil {
		return nil
	}

	var filenames []string
	for _, media := range t.ExtendedEntities.Media {
		if media.Type != "photo" {
			continue
		}
		if name := remoteBasename(media.MediaURLHTTPS); name != "" {
			filenames = append(filenames, name)
		}
	}
	return filenames
}

// remoteBasename extracts the final path segment of a media URL.
func remoteBasename(url string) string {
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:]
	}
	return url
}
