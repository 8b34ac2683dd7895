// pagehead-lint cross-checks a route table against the page metadata file.
// It is a batch diagnostic meant for CI: exit code 1 means at least one
// static GET route has no metadata, or metadata exists for a dead path.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"pagehead.dev/pagehead/internal/config"
	"pagehead.dev/pagehead/internal/routelint"
)

var CLI struct {
	Config string   `short:"c" help:"Page metadata YAML file" default:"config/meta.yaml"`
	Routes string   `short:"r" help:"Route table file, one 'METHOD PATH' per line" required:""`
	Ignore []string `short:"i" help:"Paths exempt from the missing check (health checks, metrics)"`
	Quiet  bool     `short:"q" help:"Only set the exit code, print nothing"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("pagehead-lint"),
		kong.Description("Cross-check a route table against the page metadata registry."))

	registry, err := config.Load(CLI.Config)
	ctx.FatalIfErrorf(err)

	routes, err := readRoutes(CLI.Routes)
	ctx.FatalIfErrorf(err)

	report := routelint.Check(routes, registry.Paths(), CLI.Ignore...)
	if !CLI.Quiet {
		for _, p := range report.Missing {
			fmt.Printf("missing: route %s has no page metadata\n", p)
		}
		for _, p := range report.Orphaned {
			fmt.Printf("orphaned: metadata for %s matches no route\n", p)
		}
		if report.Clean() {
			fmt.Printf("ok: %d metadata entries, all routes covered\n", registry.Len())
		}
	}
	if !report.Clean() {
		ctx.Exit(1)
	}
}

// readRoutes parses a route table file. Blank lines and #-comments are
// skipped; every other line must be "METHOD PATH".
func readRoutes(path string) ([]routelint.Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read route table: %w", err)
	}
	defer f.Close()

	var routes []routelint.Route
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected 'METHOD PATH', got %q", path, line, text)
		}
		routes = append(routes, routelint.Route{
			Method:  strings.ToUpper(fields[0]),
			Pattern: fields[1],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read route table: %w", err)
	}
	return routes, nil
}
