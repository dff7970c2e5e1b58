package models

import "strings"

// MemoryType discriminates how a memory item is rendered.
type MemoryType string

const (
	// MemoryImage renders the item as a still photo.
	MemoryImage MemoryType = "image"

	// MemoryVideo renders the item as a playable video.
	MemoryVideo MemoryType = "video"
)

// MemoryTypeFromContentType derives the memory type from an uploaded file's
// MIME content type: anything whose type begins with "video" becomes a
// video, everything else an image.
func MemoryTypeFromContentType(contentType string) MemoryType {
	if strings.HasPrefix(contentType, "video") {
		return MemoryVideo
	}
	return MemoryImage
}

// Memory is one image or video entry within a MemoryPage.
type Memory struct {
	// Type tells the viewer whether URL points at an image or a video.
	Type MemoryType `json:"type"`

	// URL is an absolute or root-relative reference to the stored media.
	URL string `json:"url"`

	// Caption is optional text shown alongside the media.
	Caption string `json:"caption"`

	// Order is the zero-based position within the page. It is rewritten
	// from the array index on every save and carries no independent
	// meaning between saves.
	Order int `json:"order"`
}

// ReorderMemories rewrites every item's Order field to its zero-based slice
// index. Called on every create/update submission so that prior values and
// mid-list deletions never leak stale positions into storage.
func ReorderMemories(memories []Memory) []Memory {
	for i := range memories {
		memories[i].Order = i
	}
	return memories
}
