// Package avatar normalizes user avatar references into fetchable URLs.
package avatar

import "strings"

// DefaultURL is served when a user has no custom avatar.
const DefaultURL = "https://cube.elemecdn.com/3/7c/3ea6beec64369c2642b92c6726f1epng.png"

const uploadsPath = "/api/static/uploads/avatars/"

// URL resolves a stored avatar reference against the API base URL. Absolute
// URLs pass through unchanged, rooted paths are joined to the base, and bare
// filenames resolve under the uploads directory. An empty reference yields
// DefaultURL.
func URL(ref, baseURL string) string {
	if ref == "" {
		return DefaultURL
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	base := strings.TrimRight(baseURL, "/")
	if strings.HasPrefix(ref, "/") {
		return base + ref
	}
	return base + uploadsPath + ref
}

// HasCustom reports whether the reference points at a user-supplied avatar.
func HasCustom(ref string) bool {
	return ref != ""
}
