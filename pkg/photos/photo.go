// Package photos implements the in-memory photo library model: tagged photos grouped into
// albums owned by users, with tag/date search and an administrable account registry.
package photos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

/**************************************************************************************************
** Photo is a file-backed library entry. Identity is the absolute file path and nothing
** else: two Photo values with the same path are the same logical photo even when
** constructed independently, which is what the per-user registry relies on. Renaming or
** moving the file on disk therefore produces a distinct photo on the next import.
**
** DateTaken is the file's last-modified time truncated to whole seconds; sub-second
** precision is discarded so date comparisons stay stable across round-trips.
**
** The core never loads image bytes. Rendering is delegated to an ImageRenderer
** collaborator which only ever sees the path and the timestamp.
**************************************************************************************************/
type Photo struct {
	FilePath  string    `json:"filePath"`  // Absolute path, unique identity
	Caption   string    `json:"caption"`   // Free-form caption, never null
	DateTaken time.Time `json:"dateTaken"` // Capture time, whole-second precision
	Tags      []Tag     `json:"tags"`      // Ordered, no duplicates by name+value
}

/**************************************************************************************************
** NewPhoto constructs a Photo for the file at path. The path is resolved to an absolute
** path and DateTaken is taken from the file's modification time, truncated to seconds.
**
** @param path - Path to the image file
** @return *Photo - The new photo
** @return error - If the path cannot be resolved or the file cannot be stat'd
**************************************************************************************************/
func NewPhoto(path string) (*Photo, error) {
	return newPhoto(path, false)
}

/**************************************************************************************************
** NewPhotoWithOptions constructs a Photo like NewPhoto but, when useExif is set, prefers
** the EXIF original capture date over the file modification time. A file without usable
** EXIF data silently falls back to mtime.
**************************************************************************************************/
func NewPhotoWithOptions(path string, useExif bool) (*Photo, error) {
	return newPhoto(path, useExif)
}

func newPhoto(path string, useExif bool) (*Photo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving photo path %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading photo file %q: %w", abs, err)
	}

	taken := info.ModTime().Truncate(time.Second)
	if useExif {
		if exifTime, ok := exifDateTaken(abs); ok {
			taken = exifTime.Truncate(time.Second)
		}
	}

	return &Photo{
		FilePath:  abs,
		Caption:   "",
		DateTaken: taken,
		Tags:      []Tag{},
	}, nil
}

/**************************************************************************************************
** AddTag appends a tag to the photo. Returns false without modifying anything when an
** equal tag (case-insensitive name and value) is already present.
**
** @param name - Tag name
** @param value - Tag value
** @return bool - true if the tag was added
**************************************************************************************************/
func (p *Photo) AddTag(name, value string) bool {
	tag := NewTag(name, value)
	if containsTag(p.Tags, tag) {
		return false
	}
	p.Tags = append(p.Tags, tag)
	return true
}

/**************************************************************************************************
** RemoveTag removes the matching tag from the photo.
**
** @return bool - true if a tag was removed
**************************************************************************************************/
func (p *Photo) RemoveTag(name, value string) bool {
	tag := NewTag(name, value)
	for i, existing := range p.Tags {
		if existing.Equal(tag) {
			p.Tags = append(p.Tags[:i], p.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// HasTag reports whether the photo carries the given tag.
func (p *Photo) HasTag(name, value string) bool {
	return containsTag(p.Tags, NewTag(name, value))
}

/**************************************************************************************************
** TagsByName returns every tag on the photo whose name matches, case-insensitively.
** Useful for multi-valued tag types like "person".
**************************************************************************************************/
func (p *Photo) TagsByName(name string) []Tag {
	result := []Tag{}
	for _, tag := range p.Tags {
		if strings.EqualFold(tag.Name, name) {
			result = append(result, tag)
		}
	}
	return result
}

// SetCaption replaces the caption. The empty string is stored as-is, never nil.
func (p *Photo) SetCaption(caption string) {
	p.Caption = caption
}

// FileName returns the base name of the backing file.
func (p *Photo) FileName() string {
	return filepath.Base(p.FilePath)
}

/**************************************************************************************************
** SameFile reports whether the other photo refers to the same file. This is the only
** equality the model defines for photos.
**************************************************************************************************/
func (p *Photo) SameFile(other *Photo) bool {
	if other == nil {
		return false
	}
	return p.FilePath == other.FilePath
}

func (p *Photo) String() string {
	if p.Caption == "" {
		return p.FileName()
	}
	return p.FileName() + " - " + p.Caption
}
