package media

import (
	"mime"
	"path/filepath"
	"strings"
)

// allowedPhotoMIMEs is the set of content types the migration uploads.
// Video and GIF attachments are out of scope.
var allowedPhotoMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// DetectPhotoMIME determines a file's content type from its extension and
// reports whether it is an allowed photo format. The detected type is
// authoritative over whatever the upload endpoint later echoes back.
func DetectPhotoMIME(path string) (string, bool) {
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		return "", false
	}

	// TypeByExtension may append parameters ("; charset=..."); the allowed
	// set is matched on the bare type.
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	if !allowedPhotoMIMEs[mimeType] {
		return "", false
	}
	return mimeType, true
}
