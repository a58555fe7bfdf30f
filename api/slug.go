package api

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"stream-portal/model"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SlugToTitle converts a URL slug to display-title form:
// "first-of-its-kind" becomes "First Of Its Kind". Only the first character
// of each segment is upper-cased; interior characters keep their casing.
func SlugToTitle(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// CategoryToSlug converts a master title to a URL slug by lower-casing and
// collapsing whitespace runs into single hyphens. Not an exact inverse of
// SlugToTitle; route matching tolerates the difference via
// FindMasterByTitle's case-insensitive compare.
func CategoryToSlug(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(title), "-")
}

// Master is any record from the master taxonomies that can be looked up by
// its display title.
type Master interface {
	MasterTitle() string
}

// FindMasterByTitle resolves a display title or URL slug against items,
// case-insensitively and treating hyphens as spaces, so the slug
// "first-of-its-kind" matches a record titled "First Of Its Kind". The
// second return reports whether a match was found; callers handle the
// not-found case explicitly.
func FindMasterByTitle[T Master](items []T, title string) (T, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(title), "-", " ")
	for _, item := range items {
		if strings.ToLower(item.MasterTitle()) == normalized {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindCategoryByTitle is FindMasterByTitle fixed to the category taxonomy.
func FindCategoryByTitle(categories []model.MasterCategory, title string) (model.MasterCategory, bool) {
	return FindMasterByTitle(categories, title)
}
