package queue

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"mediaconv/internal/media"
)

const (
	// FallbackName is used when a path has no extractable final segment.
	FallbackName = "file"
	// FolderItemName is the fixed display name of the folder placeholder item.
	FolderItemName = "folder_item.jpg"
)

// Item is one user-selected media asset.
type Item struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Path string     `json:"path"`
	Kind media.Kind `json:"kind"`
}

// IDFunc generates item identities.
type IDFunc func() string

// NewID returns a random (version 4) UUID string.
func NewID() string {
	return uuid.NewString()
}

// NewItem builds an Item for path, classifying it by its display name.
func NewItem(path string, newID IDFunc) Item {
	if newID == nil {
		newID = NewID
	}
	name := DisplayName(path)
	return Item{
		ID:   newID(),
		Name: name,
		Path: DisplayPath(path),
		Kind: media.Classify(name),
	}
}

// NewFolderItem builds the placeholder Item that stands in for a chosen folder.
func NewFolderItem(path string, newID IDFunc) Item {
	if newID == nil {
		newID = NewID
	}
	return Item{
		ID:   newID(),
		Name: FolderItemName,
		Path: DisplayPath(path),
		Kind: media.KindPhoto,
	}
}

// DisplayName returns the final segment of path as valid, NFC-normalized text,
// or FallbackName when the path has no usable final segment.
func DisplayName(path string) string {
	trimmed := strings.TrimRight(path, string(filepath.Separator)+"/")
	if trimmed == "" || trimmed == filepath.VolumeName(trimmed) {
		return FallbackName
	}
	base := filepath.Base(trimmed)
	switch base {
	case ".", "..", string(filepath.Separator):
		return FallbackName
	}
	return norm.NFC.String(toValidText(base))
}

// DisplayPath renders path as valid text; invalid encoding bytes are replaced.
func DisplayPath(path string) string {
	return toValidText(path)
}

func toValidText(value string) string {
	return strings.ToValidUTF8(value, "\uFFFD")
}
