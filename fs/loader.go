// Package fs provides file-based loading of rendered documentation sites.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docindex"
)

// PathToURL converts a page path relative to the site directory to its
// publish URL.
// Example: component-a/2.0/install.html → /component-a/2.0/install.html
func PathToURL(relPath string) string {
	return "/" + strings.TrimPrefix(filepath.ToSlash(relPath), "/")
}

// URLToPath converts a publish URL to a page path relative to the site
// directory. Directory URLs map to their index.html.
// Example: /antora/1.0/ → antora/1.0/index.html
func URLToPath(pubURL string) string {
	p := strings.TrimPrefix(pubURL, "/")
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index.html"
	}
	return filepath.FromSlash(p)
}

// PageSourceFromPath derives component, version and stem from a page path
// relative to the site directory, following the component/version/page
// layout of the generated site. Pages at the site root have no component,
// pages one level down have no version.
func PageSourceFromPath(relPath string) docindex.PageSource {
	segments := strings.Split(filepath.ToSlash(relPath), "/")
	name := segments[len(segments)-1]

	src := docindex.PageSource{
		Stem: strings.TrimSuffix(name, path.Ext(name)),
	}
	if len(segments) >= 2 {
		src.Component = segments[0]
	}
	if len(segments) >= 3 {
		src.Version = segments[1]
	}
	return src
}

// Ensure PageLoader implements docindex.PageLoader at compile time.
var _ docindex.PageLoader = (*PageLoader)(nil)

// PageLoader loads the HTML pages of a generated site directory.
type PageLoader struct {
	baseDir        string
	directoryStyle bool
}

// Option configures a PageLoader.
type Option func(*PageLoader)

// WithDirectoryURLs publishes index.html pages under their directory URL
// ("/antora/1.0/" instead of "/antora/1.0/index.html"), as sites built with
// the indexify URL style link to them.
func WithDirectoryURLs() Option {
	return func(l *PageLoader) {
		l.directoryStyle = true
	}
}

// NewPageLoader creates a new PageLoader that reads from the given site directory.
func NewPageLoader(baseDir string, opts ...Option) *PageLoader {
	l := &PageLoader{baseDir: baseDir}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadPages reads every .html file under the site directory, in lexical
// path order. Directories starting with "_" or "." (UI assets, VCS data)
// are skipped. Returns ENOTFOUND if the directory does not exist.
func (l *PageLoader) LoadPages(ctx context.Context) ([]*docindex.Page, error) {
	info, err := os.Stat(l.baseDir)
	if os.IsNotExist(err) {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "site directory %q not found", l.baseDir)
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, docindex.Errorf(docindex.EINVALID, "site path %q is not a directory", l.baseDir)
	}

	var paths []string
	err = filepath.WalkDir(l.baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != l.baseDir && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), ".html") {
			rel, err := filepath.Rel(l.baseDir, p)
			if err != nil {
				return err
			}
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(paths, func(i, j int) bool {
		return filepath.ToSlash(paths[i]) < filepath.ToSlash(paths[j])
	})

	pages := make([]*docindex.Page, 0, len(paths))
	for _, rel := range paths {
		contents, err := os.ReadFile(filepath.Join(l.baseDir, rel))
		if err != nil {
			return nil, err
		}
		pubURL := PathToURL(rel)
		if l.directoryStyle && path.Base(pubURL) == "index.html" {
			pubURL = strings.TrimSuffix(pubURL, "index.html")
		}
		pages = append(pages, &docindex.Page{
			Contents: contents,
			Src:      PageSourceFromPath(rel),
			Pub:      docindex.PagePublish{URL: pubURL},
		})
	}
	return pages, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}
