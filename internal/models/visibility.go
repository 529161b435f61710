package models

import (
	"errors"
	"strings"
)

// Visibility represents whether a course category is open to everyone
type Visibility string

const (
	// VisibilityPublic indicates a category every member can see
	VisibilityPublic Visibility = "public"

	// VisibilityPrivate indicates a category only course members can see
	VisibilityPrivate Visibility = "private"
)

// ErrUnrecognizedCategory is returned when a category name carries no visibility glyph
var ErrUnrecognizedCategory = errors.New("category name has no recognized visibility prefix")

// categoryGlyphs maps each glyph to the visibility it encodes. The first
// glyph listed for a visibility is the one used when naming categories.
var categoryGlyphs = []struct {
	glyph      string
	visibility Visibility
}{
	{"📚", VisibilityPublic},
	{"👻", VisibilityPrivate},
	{"🔒", VisibilityPrivate},
}

// Glyph returns the emoji used to prefix category names of this visibility
func (v Visibility) Glyph() string {
	for _, g := range categoryGlyphs {
		if g.visibility == v {
			return g.glyph
		}
	}
	return ""
}

// IsPrivate returns true if the visibility is private
func (v Visibility) IsPrivate() bool {
	return v == VisibilityPrivate
}

// CategoryName builds the display name of a course category
func CategoryName(courseName string, v Visibility) string {
	return v.Glyph() + " " + courseName
}

// ParseCategoryName splits a category display name into the bare course
// name and the visibility encoded by its glyph
func ParseCategoryName(name string) (string, Visibility, error) {
	for _, g := range categoryGlyphs {
		if courseName, ok := strings.CutPrefix(name, g.glyph+" "); ok {
			return courseName, g.visibility, nil
		}
	}
	return "", "", ErrUnrecognizedCategory
}
