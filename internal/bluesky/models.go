package bluesky

// Session holds the bearer credentials returned by createSession.
// It is created once per run and read-only afterwards.
type Session struct {
	AccessJwt string `json:"accessJwt"` // Bearer token for subsequent calls
	DID       string `json:"did"`       // Account DID, used as the record repo
	Handle    string `json:"handle"`    // Resolved handle
}

// Repo returns the repository identifier for record writes. The DID is
// preferred; older PDS responses may only carry the handle.
func (s *Session) Repo() string {
	if s.DID != "" {
		return s.DID
	}
	return s.Handle
}

// BlobRef is the platform's handle for an uploaded binary blob. The
// mimeType is stamped from local detection after upload because the
// upload endpoint does not validate it.
type BlobRef struct {
	Type     string   `json:"$type"`
	Ref      BlobLink `json:"ref"`
	MimeType string   `json:"mimeType"`
	Size     int64    `json:"size"`
}

// BlobLink wraps the opaque content link inside a blob reference.
type BlobLink struct {
	Link string `json:"$link"`
}

// PostRecord is the outbound app.bsky.feed.post record.
type PostRecord struct {
	Type      string       `json:"$type"`
	Text      string       `json:"text"`
	CreatedAt string       `json:"createdAt"`
	Embed     *ImagesEmbed `json:"embed,omitempty"`
}

// ImagesEmbed attaches up to four image blobs to a post.
type ImagesEmbed struct {
	Type   string       `json:"$type"`
	Images []EmbedImage `json:"images"`
}

// EmbedImage pairs an uploaded blob with its alt text.
type EmbedImage struct {
	Image BlobRef `json:"image"`
	Alt   string  `json:"alt"`
}

type createSessionRequest struct {
	Identifier      string `json:"identifier"`
	Password        string `json:"password"`
	AuthFactorToken string `json:"authFactorToken,omitempty"`
}

type uploadBlobResponse struct {
	Blob BlobRef `json:"blob"`
}

type createRecordRequest struct {
	Repo       string     `json:"repo"`
	Collection string     `json:"collection"`
	Record     PostRecord `json:"record"`
}

// apiErrorBody is the XRPC error envelope: {"error": name, "message": ...}.
type apiErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
