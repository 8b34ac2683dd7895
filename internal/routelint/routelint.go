// Package routelint cross-checks a router's route table against the page
// metadata registry. It is a batch diagnostic: run it at startup or from the
// pagehead-lint CLI, never per request.
package routelint

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Route is one entry of a route table.
type Route struct {
	Method  string
	Pattern string
}

// Static reports whether the pattern is matchable by exact string equality,
// i.e. carries no chi parameter or wildcard syntax.
func (r Route) Static() bool {
	return !strings.ContainsAny(r.Pattern, "{}*")
}

// Collect walks a chi router and returns its route table sorted by pattern.
func Collect(r chi.Routes) []Route {
	var routes []Route
	_ = chi.Walk(r, func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, Route{Method: method, Pattern: pattern})
		return nil
	})
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Pattern != routes[j].Pattern {
			return routes[i].Pattern < routes[j].Pattern
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

// Report lists the disagreements between routes and registry.
type Report struct {
	// Missing are static GET routes with no metadata registration.
	Missing []string
	// Orphaned are registered paths that no static GET route serves.
	Orphaned []string
}

// Clean reports whether routes and registry fully agree.
func (rep Report) Clean() bool {
	return len(rep.Missing) == 0 && len(rep.Orphaned) == 0
}

// Check compares static GET routes against the registered metadata paths.
// Parameterized and wildcard routes are skipped: they cannot carry metadata.
// Paths listed in ignore (health checks, metrics endpoints) are exempt from
// the missing check.
func Check(routes []Route, registered []string, ignore ...string) Report {
	ignored := make(map[string]struct{}, len(ignore))
	for _, p := range ignore {
		ignored[p] = struct{}{}
	}
	served := map[string]struct{}{}
	for _, rt := range routes {
		if rt.Method != http.MethodGet || !rt.Static() {
			continue
		}
		served[rt.Pattern] = struct{}{}
	}
	has := make(map[string]struct{}, len(registered))
	for _, p := range registered {
		has[p] = struct{}{}
	}

	var rep Report
	for p := range served {
		if _, ok := ignored[p]; ok {
			continue
		}
		if _, ok := has[p]; !ok {
			rep.Missing = append(rep.Missing, p)
		}
	}
	for _, p := range registered {
		if _, ok := served[p]; !ok {
			rep.Orphaned = append(rep.Orphaned, p)
		}
	}
	sort.Strings(rep.Missing)
	sort.Strings(rep.Orphaned)
	return rep
}
