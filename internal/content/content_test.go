package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePage(t *testing.T, dir, slug, data string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(data), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}
}

func TestLoadMarkdown(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "about", "---\ntitle: About Us\nsummary: Who we are\n---\n# Hello\n\nSome *body* text.\n")

	page, err := NewStore(dir).Load("about")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if page.Title != "About Us" || page.Summary != "Who we are" {
		t.Fatalf("front matter not applied: %+v", page)
	}
	body := string(page.Body)
	if !strings.Contains(body, "<h1") || !strings.Contains(body, "<em>body</em>") {
		t.Fatalf("markdown not converted: %q", body)
	}
}

func TestLoadNoFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "getting-started", "plain **markdown** only\n")

	page, err := NewStore(dir).Load("getting-started")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if page.Title != "Getting Started" {
		t.Fatalf("expected prettified slug title, got %q", page.Title)
	}
	if !strings.Contains(string(page.Body), "<strong>markdown</strong>") {
		t.Fatalf("body not converted: %q", page.Body)
	}
}

func TestLoadHTMLFormatIsSanitized(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "legal", "---\nformat: html\n---\n<p>fine</p><script>alert(1)</script>\n")

	page, err := NewStore(dir).Load("legal")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	body := string(page.Body)
	if !strings.Contains(body, "<p>fine</p>") {
		t.Fatalf("expected paragraph kept: %q", body)
	}
	if strings.Contains(body, "<script>") {
		t.Fatalf("script tag survived sanitization: %q", body)
	}
}

func TestLoadUnknownSlug(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadRejectsTraversal(t *testing.T) {
	store := NewStore(t.TempDir())
	for _, slug := range []string{"../secret", "a/b", "a.b", ""} {
		if _, err := store.Load(slug); !errors.Is(err, ErrNotFound) {
			t.Fatalf("slug %q: expected ErrNotFound, got %v", slug, err)
		}
	}
}

func TestLoadBadFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "broken", "---\ntitle: [unclosed\n---\nbody\n")

	if _, err := NewStore(dir).Load("broken"); err == nil {
		t.Fatal("expected front matter parse error")
	}
}
