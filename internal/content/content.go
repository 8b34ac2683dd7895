// Package content loads static page bodies from local markdown files with
// YAML front matter. Head metadata is deliberately not part of a page: the
// meta registry is the only source of head tags, keyed by path.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no content file exists for a slug.
var ErrNotFound = errors.New("content: not found")

const defaultFormat = "markdown"

// Page is a rendered static page.
type Page struct {
	Slug    string
	Title   string
	Summary string
	Body    template.HTML
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Format  string `yaml:"format"` // "markdown" (default) or "html"
}

// Store reads pages from a directory of slug.md files.
type Store struct {
	dir      string
	md       goldmark.Markdown
	sanitize *bluemonday.Policy
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{
		dir:      dir,
		md:       goldmark.New(),
		sanitize: bluemonday.UGCPolicy(),
	}
}

// Load reads, parses and renders the page for slug.
func (s *Store) Load(slug string) (Page, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" || strings.ContainsAny(slug, "/\\.") {
		return Page{}, ErrNotFound
	}
	file := filepath.Join(s.dir, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}

	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}
	format := strings.TrimSpace(front.Format)
	if format == "" {
		format = defaultFormat
	}

	var rendered string
	switch format {
	case "markdown":
		var buf bytes.Buffer
		if err := s.md.Convert([]byte(body), &buf); err != nil {
			return Page{}, fmt.Errorf("content: render %s: %w", file, err)
		}
		rendered = buf.String()
	case "html":
		// raw HTML passthrough is sanitized; markdown output is goldmark's
		// own and only ever comes from files in the repo
		rendered = s.sanitize.Sanitize(body)
	default:
		return Page{}, fmt.Errorf("content: unsupported format %q in %s", format, file)
	}

	page := Page{
		Slug:    slug,
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    template.HTML(rendered),
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func prettifySlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
