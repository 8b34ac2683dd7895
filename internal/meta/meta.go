// Package meta attaches SEO, Open Graph and Twitter Card metadata to pages
// keyed by request path, and renders it into HTML head tags.
//
// Records are meant to be static: build the registry once at startup (for
// example from a YAML file, see the config package) and only read from it
// while serving requests. Field values are developer-authored strings and
// are NOT HTML-escaped on output; never feed user input into a record.
package meta

import (
	"fmt"
	"sort"
	"strings"
)

// Recognized field names. Ordering in rendered output is alphabetical by
// these names, not by tag family.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCanonical   = "canonical"

	FieldOGType        = "og_type"
	FieldOGTitle       = "og_title"
	FieldOGDescription = "og_description"
	FieldOGImage       = "og_image"
	FieldOGSiteName    = "og_site_name"
	FieldOGURL         = "og_url"

	FieldTwitterCard        = "twitter_card"
	FieldTwitterSite        = "twitter_site"
	FieldTwitterTitle       = "twitter_title"
	FieldTwitterDescription = "twitter_description"
	FieldTwitterURL         = "twitter_url"
	FieldTwitterImage       = "twitter_image"
)

var knownFields = map[string]struct{}{
	FieldTitle:              {},
	FieldDescription:        {},
	FieldCanonical:          {},
	FieldOGType:             {},
	FieldOGTitle:            {},
	FieldOGDescription:      {},
	FieldOGImage:            {},
	FieldOGSiteName:         {},
	FieldOGURL:              {},
	FieldTwitterCard:        {},
	FieldTwitterSite:        {},
	FieldTwitterTitle:       {},
	FieldTwitterDescription: {},
	FieldTwitterURL:         {},
	FieldTwitterImage:       {},
}

// OGTypes is the allowed value set for og_type.
var OGTypes = []string{
	"music.song", "music.album", "music.playlist", "music.radio_station",
	"video.movie", "video.episode", "video.tv_show", "video.other",
	"article", "book", "profile", "website",
}

// TwitterCards is the allowed value set for twitter_card.
var TwitterCards = []string{
	"summary", "summary_large_image", "app", "player",
	"gallery", "product", "lead_generation", "website",
}

// UnknownFieldError reports an attempt to set a field name outside the
// fifteen recognized names.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("meta: unknown field %q", e.Name)
}

// InvalidEnumError reports an enum-constrained field set to a value outside
// its fixed set.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("meta: invalid %s value %q (allowed: %s)",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// Record is an immutable set of head metadata fields for one page.
// The zero value is a valid empty record.
type Record struct {
	fields map[string]string
}

// Get returns the value of a field and whether it is present.
func (r Record) Get(name string) (string, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Fields returns the present field names in ascending order.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether no fields are present.
func (r Record) Empty() bool { return len(r.fields) == 0 }

// Builder accumulates field assignments and validates them on Build.
type Builder struct {
	fields map[string]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{fields: map[string]string{}}
}

// Set assigns a field value. Setting an empty value marks the field absent.
// Validation is deferred to Build so callers can assign in any order.
func (b *Builder) Set(name, value string) *Builder {
	if value == "" {
		delete(b.fields, name)
		return b
	}
	b.fields[name] = value
	return b
}

// Build validates the accumulated fields and returns an immutable Record.
// It fails with *UnknownFieldError for an unrecognized field name and with
// *InvalidEnumError when og_type or twitter_card is outside its allowed set.
func (b *Builder) Build() (Record, error) {
	for name := range b.fields {
		if _, ok := knownFields[name]; !ok {
			return Record{}, &UnknownFieldError{Name: name}
		}
	}
	if v, ok := b.fields[FieldOGType]; ok && !contains(OGTypes, v) {
		return Record{}, &InvalidEnumError{Field: FieldOGType, Value: v, Allowed: OGTypes}
	}
	if v, ok := b.fields[FieldTwitterCard]; ok && !contains(TwitterCards, v) {
		return Record{}, &InvalidEnumError{Field: FieldTwitterCard, Value: v, Allowed: TwitterCards}
	}
	fields := make(map[string]string, len(b.fields))
	for name, value := range b.fields {
		fields[name] = value
	}
	return Record{fields: fields}, nil
}

// New builds a Record directly from a field map. See Builder.Build for the
// validation rules.
func New(fields map[string]string) (Record, error) {
	b := NewBuilder()
	for name, value := range fields {
		b.Set(name, value)
	}
	return b.Build()
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
