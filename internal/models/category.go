package models

import (
	"regexp"
	"strings"
)

// Category groups courses by name. Count is seeded alongside the category and
// is not recomputed from the course list.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases name, turns whitespace runs into hyphens and drops anything
// that is not a letter, digit or hyphen. "IT & Software" becomes "it-software".
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// NewCategory builds a category whose slug is derived from its name.
func NewCategory(id, name string, count int) Category {
	return Category{ID: id, Name: name, Slug: Slugify(name), Count: count}
}
