// Package imageurl rewrites stored image references into directly renderable
// URLs. Content editors paste Google Drive share links into the admin forms;
// those links serve an HTML viewer, not the image bytes, so they are rewritten
// to the direct-content host. Everything else passes through untouched.
package imageurl

import (
	"regexp"
	"strings"
)

// DefaultPlaceholder is returned for empty references when no custom
// placeholder is configured.
const DefaultPlaceholder = "/placeholder-image.jpg"

const directContentTemplate = "https://lh3.googleusercontent.com/d/"

var (
	filePathPattern = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
	idParamPattern  = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
	ucParamPattern  = regexp.MustCompile(`/uc\?id=([a-zA-Z0-9_-]+)`)
)

// Normalizer maps stored image references to renderable URLs using a
// configurable placeholder for empty values.
type Normalizer struct {
	Placeholder string
}

// Normalize maps a stored image reference to a renderable URL. It never
// fails: unrecognized references degrade to passthrough.
func (n Normalizer) Normalize(ref string) string {
	if strings.TrimSpace(ref) == "" {
		if n.Placeholder != "" {
			return n.Placeholder
		}
		return DefaultPlaceholder
	}
	if strings.HasPrefix(ref, "/") {
		return ref
	}
	if strings.Contains(ref, "googleusercontent.com") {
		return ref
	}
	if id := DriveFileID(ref); id != "" {
		return directContentTemplate + id
	}
	return ref
}

// NormalizeAll applies Normalize to every reference in order.
func (n Normalizer) NormalizeAll(refs []string) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = n.Normalize(ref)
	}
	return out
}

// Normalize applies the default normalizer.
func Normalize(ref string) string {
	return Normalizer{}.Normalize(ref)
}

// IsDriveURL reports whether the reference points at Google Drive.
func IsDriveURL(ref string) bool {
	return strings.Contains(ref, "drive.google.com")
}

// DriveFileID extracts the file identifier from the known Drive share-link
// shapes, in priority order: /file/d/{id}, ?id= parameter, /uc?id=. Empty
// string when none match.
func DriveFileID(ref string) string {
	if m := filePathPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	if m := idParamPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	if m := ucParamPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	return ""
}
