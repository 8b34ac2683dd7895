package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"pagehead.dev/pagehead/internal/config"
	"pagehead.dev/pagehead/internal/content"
	"pagehead.dev/pagehead/internal/meta"
	mw "pagehead.dev/pagehead/internal/middleware"
	"pagehead.dev/pagehead/internal/routelint"
	"pagehead.dev/pagehead/internal/webmetrics"
)

var (
	templatesDir = "templates"
	// devMode is set in main() based on env: PAGEHEAD_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template
)

// infraPaths are served by the router but never carry page metadata.
var infraPaths = []string{"/healthz", "/metrics"}

func main() {
	_ = godotenv.Load()

	var (
		addr     string
		tmplPath string
		contDir  string
		metaPath string
		indent   int
	)
	// Port resolution: prefer PAGEHEAD_PORT, then PORT, else 8080
	port := os.Getenv("PAGEHEAD_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&contDir, "content", "content", "content directory")
	flag.StringVar(&metaPath, "meta", "config/meta.yaml", "page metadata file")
	flag.IntVar(&indent, "indent", meta.DefaultIndent, "head tag indent width")
	flag.Parse()

	templatesDir = tmplPath
	devMode = os.Getenv("PAGEHEAD_DEV") != "" || os.Getenv("DEV") != ""

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	// Page metadata is static: any invalid entry aborts startup here, never
	// at request time.
	registry, err := config.Load(metaPath)
	if err != nil {
		log.Fatalf("load page metadata: %v", err)
	}

	a := &app{
		registry: registry,
		pages:    content.NewStore(contDir),
		indent:   indent,
	}
	r := newRouter(a)

	// Cross-check routes against the metadata registry and warn on gaps.
	report := routelint.Check(routelint.Collect(r), registry.Paths(), infraPaths...)
	for _, p := range report.Missing {
		log.Printf("warn: route %s has no page metadata", p)
	}
	for _, p := range report.Orphaned {
		log.Printf("warn: metadata registered for %s but no route serves it", p)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (devMode=%v, %d metadata entries)", addr, devMode, registry.Len())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

func newRouter(a *app) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(middleware.RealIP)
	r.Use(mw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", webmetrics.Handler())

	r.Get("/", a.page("home"))
	r.Get("/about", a.page("about"))
	r.Get("/privacy", a.page("privacy"))
	r.Get("/guides/{slug}", a.guide)
	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes the base layout. In dev mode, templates are reparsed on each request.
func render(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var t *template.Template
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}
