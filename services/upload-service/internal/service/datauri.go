package service

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// InvalidImageMessage is reported when a value is not an accepted image data URI.
const InvalidImageMessage = "Invalid image format. Expected base64 image data."

var (
	// Allowed declared types. Only the prefix is checked here; the payload is examined later.
	imageDataURIPrefix = regexp.MustCompile(`^data:image/(png|jpeg|jpg|webp|svg\+xml);base64,`)
	imageDataURIParts  = regexp.MustCompile(`^data:image/([^;]+);base64,(.+)$`)
	unsafeOwnerChars   = regexp.MustCompile(`[^A-Za-z0-9_-]`)
)

// IsImageDataURI reports whether s starts like a base64 data URI of an accepted image type.
func IsImageDataURI(s string) bool {
	return imageDataURIPrefix.MatchString(s)
}

// splitDataURI extracts the MIME subtype and the base64 payload.
func splitDataURI(s string) (subtype, payload string, ok bool) {
	m := imageDataURIParts.FindStringSubmatch(s)
	if m == nil || m[1] == "" || m[2] == "" {
		return "", "", false
	}
	return m[1], m[2], true
}

// decodePayload accepts standard-alphabet base64 with or without padding.
func decodePayload(payload string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}

func extensionFor(subtype string) string {
	switch subtype {
	case "svg+xml", "svg":
		return "svg"
	case "jpeg":
		return "jpg"
	default:
		return subtype
	}
}

// contentTypeFor returns the canonical MIME type for a declared subtype.
func contentTypeFor(subtype string) string {
	if subtype == "jpg" {
		return "image/jpeg"
	}
	return "image/" + subtype
}

// sanitizeOwner keeps the owner id usable as a single path segment.
func sanitizeOwner(ownerID string) string {
	return unsafeOwnerChars.ReplaceAllString(ownerID, "_")
}
