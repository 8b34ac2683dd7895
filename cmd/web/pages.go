package main

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pagehead.dev/pagehead/internal/content"
	"pagehead.dev/pagehead/internal/meta"
	"pagehead.dev/pagehead/internal/webmetrics"
)

type app struct {
	registry *meta.Registry
	pages    *content.Store
	indent   int
}

// PageData is the view model for the shared base layout.
type PageData struct {
	Title   string
	Summary string
	Body    template.HTML
	Path    string

	// Head is the pre-rendered metadata block for this path. HasHead is
	// false when the path has no registration, so the layout omits the
	// block entirely instead of emitting a blank line.
	Head    template.HTML
	HasHead bool
}

// page serves a static content page at the route's own path.
func (a *app) page(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.servePage(w, r, slug)
	}
}

// guide serves a content page under /guides/{slug}. Parameterized routes
// never match the metadata registry, so these pages render without a head
// block.
func (a *app) guide(w http.ResponseWriter, r *http.Request) {
	a.servePage(w, r, chi.URLParam(r, "slug"))
}

func (a *app) servePage(w http.ResponseWriter, r *http.Request, slug string) {
	page, err := a.pages.Load(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	head, ok := a.registry.RenderFor(r.URL.Path, a.indent)
	webmetrics.ObserveRender(ok)

	render(w, PageData{
		Title:   page.Title,
		Summary: page.Summary,
		Body:    page.Body,
		Path:    r.URL.Path,
		Head:    head,
		HasHead: ok,
	})
}
