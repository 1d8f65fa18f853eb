package archive

import "time"

// createdAtLayout is the RFC-2822-like timestamp format used by the
// Twitter archive, e.g. "Mon Jan 01 12:00:00 +0000 2024".
const createdAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// isoMillisLayout is the outbound format: ISO-8601 UTC with millisecond
// precision and a 'Z' suffix, as the destination platform expects.
const isoMillisLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp converts an archive timestamp to an ISO-8601 UTC string.
// An unparseable input falls back to the current UTC instant so the
// outbound record always carries a valid createdAt.
func FormatTimestamp(createdAt string) string {
	t, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return time.Now().UTC().Format(isoMillisLayout)
	}
	return t.UTC().Format(isoMillisLayout)
}
