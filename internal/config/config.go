// Package config loads the page metadata registry from a YAML file.
//
// The file is a flat list of pages, each binding a static path to metadata
// fields by their internal names:
//
//	pages:
//	  - path: /
//	    fields:
//	      title: Pagehead
//	      og_type: website
//
// Load is meant to run once at startup; any invalid field name, enum value
// or duplicate path fails the whole load so misconfiguration never reaches
// request time.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pagehead.dev/pagehead/internal/meta"
)

// File is the top-level YAML document.
type File struct {
	Pages []Page `yaml:"pages"`
}

// Page binds one static path to its metadata fields.
type Page struct {
	Path   string            `yaml:"path"`
	Fields map[string]string `yaml:"fields"`
}

// Load reads and parses a metadata file into a ready registry.
func Load(path string) (*meta.Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata config: %w", err)
	}
	reg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Parse builds a registry from raw YAML. Every record goes through the
// builder so validation errors carry the offending page path.
func Parse(raw []byte) (*meta.Registry, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse metadata config: %w", err)
	}
	reg := meta.NewRegistry()
	for i, page := range f.Pages {
		if page.Path == "" {
			return nil, fmt.Errorf("page %d: missing path", i)
		}
		b := meta.NewBuilder()
		for name, value := range page.Fields {
			b.Set(name, value)
		}
		rec, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", page.Path, err)
		}
		if err := reg.Register(page.Path, rec); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
