package media

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind tags a queue item as a still image or a video.
type Kind string

const (
	KindPhoto Kind = "photo"
	KindVideo Kind = "video"
)

// photoSuffixes is the full allow-list for KindPhoto.
var photoSuffixes = []string{".jpg", ".jpeg", ".png", ".webp", ".bmp"}

// Classify maps a file name to its media kind from the name's suffix,
// case-insensitively. Anything not on the photo allow-list is a video.
func Classify(filename string) Kind {
	lower := strings.ToLower(filename)
	for _, suffix := range photoSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return KindPhoto
		}
	}
	return KindVideo
}

// PhotoSuffixes returns a copy of the extensions classified as photos.
func PhotoSuffixes() []string {
	out := make([]string, len(photoSuffixes))
	copy(out, photoSuffixes)
	return out
}

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindPhoto || k == KindVideo
}

// Label returns a human-facing, title-cased rendering ("Photo", "Video").
func (k Kind) Label() string {
	return cases.Title(language.English).String(string(k))
}

// ParseKind decodes a wire value into a Kind.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	if !kind.Valid() {
		return "", fmt.Errorf("unknown media kind %q", value)
	}
	return kind, nil
}
