package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Siecje/coral/printer"
)

// defaultConfig is the printer configuration from the CORAL
// environment variable.
var defaultConfig printer.Config

func init() {
	for _, opt := range parseOptions(os.Getenv("CORAL"), &defaultConfig) {
		log.Printf("coral: Unknown option %q", opt)
	}
}

// parseOptions applies comma-separated options to cfg
// and returns the unknown ones.
func parseOptions(s string, cfg *printer.Config) (unknown []string) {
	for _, opt := range strings.Split(s, ",") {
		opt = strings.TrimSpace(opt)
		key, val, _ := strings.Cut(opt, "=")
		switch key {
		default:
			unknown = append(unknown, opt)
		case "":
		case "tabs":
			cfg.UseTabs = true
		case "spaces":
			cfg.UseTabs = false
		case "indent":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				unknown = append(unknown, opt)
				continue
			}
			cfg.Indent = n
		}
	}
	return unknown
}

const projectFile = "coral.toml"

var defaultExtensions = []string{".xsh", ".py"}

// project is the contents of a coral.toml file.
type project struct {
	Root string `toml:"-"`

	Indent     int      `toml:"indent"`
	Tabs       *bool    `toml:"tabs"`
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

// config returns base overridden by the settings of the project.
func (p *project) config(base printer.Config) printer.Config {
	if p.Indent > 0 {
		base.Indent = p.Indent
	}
	if p.Tabs != nil {
		base.UseTabs = *p.Tabs
	}
	return base
}

// matches reports whether path is a source file of the project.
func (p *project) matches(path string) bool {
	exts := p.Extensions
	if len(exts) == 0 {
		exts = defaultExtensions
	}
	for _, ext := range exts {
		if filepath.Ext(path) == ext {
			return true
		}
	}
	return false
}

// excluded reports whether path matches one of the exclude patterns,
// either by its base name or by its path relative to the project root.
func (p *project) excluded(path string) bool {
	rel := path
	if p.Root != "" {
		if abs, err := filepath.Abs(path); err == nil {
			if r, err := filepath.Rel(p.Root, abs); err == nil {
				rel = r
			}
		}
	}
	for _, pat := range p.Exclude {
		if ok, _ := filepath.Match(pat, filepath.Base(path)); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, filepath.ToSlash(rel)); ok {
			return true
		}
	}
	return false
}

// projects caches the project found for each directory.
// It is only used before files are formatted in parallel.
var projects = map[string]*project{}

// findProject returns the project of the nearest coral.toml in dir
// or its parents. Without one, it returns an empty project.
func findProject(dir string) (*project, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	var visited []string
	for {
		if p, ok := projects[dir]; ok {
			cache(visited, p)
			return p, nil
		}
		visited = append(visited, dir)
		path := filepath.Join(dir, projectFile)
		p, err := loadProject(path)
		if errors.Is(err, os.ErrNotExist) {
			parent := filepath.Dir(dir)
			if parent != dir {
				dir = parent
				continue
			}
			// Root.
			p = new(project)
		} else if err != nil {
			return nil, err
		}
		cache(visited, p)
		return p, nil
	}
}

func cache(dirs []string, p *project) {
	for _, d := range dirs {
		projects[d] = p
	}
}

func loadProject(path string) (*project, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	p := new(project)
	if _, err := toml.DecodeFile(path, p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Indent < 0 {
		return nil, fmt.Errorf("%s: invalid indent %d", path, p.Indent)
	}
	for _, ext := range p.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return nil, fmt.Errorf("%s: extension %q must start with a dot", path, ext)
		}
	}
	for _, pat := range p.Exclude {
		if _, err := filepath.Match(pat, ""); err != nil {
			return nil, fmt.Errorf("%s: bad exclude pattern %q: %w", path, pat, err)
		}
	}
	p.Root = filepath.Dir(path)
	return p, nil
}
