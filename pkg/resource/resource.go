// Package resource resolves configuration locations such as
// "classpath:heapcache.xml", "file:/etc/app/heapcache.xml" or a bare path.
package resource

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Location prefixes understood by Loader.
const (
	ClasspathPrefix = "classpath:"
	FilePrefix      = "file:"
)

// Resource is a readable configuration source.
type Resource interface {
	// Exists reports whether the resource can be opened.
	Exists() bool
	Open() (io.ReadCloser, error)
	// Description is used in log lines and error messages.
	Description() string
	// Filename is the base name, used to pick a decoder.
	Filename() string
}

// Loader turns location strings into Resources. Classpath locations are
// looked up in root; everything else is read from the local file system.
type Loader struct {
	root fs.FS
}

// NewLoader returns a Loader resolving classpath: locations in root.
// A nil root makes every classpath resource absent.
func NewLoader(root fs.FS) *Loader {
	return &Loader{root: root}
}

// NewDirLoader returns a Loader whose classpath is the directory dir.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

// Resource resolves location. It never fails: a resource that cannot be
// found reports Exists() == false and returns the lookup error from Open.
func (l *Loader) Resource(location string) Resource {
	switch {
	case strings.HasPrefix(location, ClasspathPrefix):
		name := strings.TrimPrefix(location, ClasspathPrefix)
		name = path.Clean(strings.TrimLeft(name, "/"))

		return &fsResource{fsys: l.root, name: name}
	case strings.HasPrefix(location, FilePrefix):
		p := strings.TrimPrefix(location, FilePrefix)
		// file:///etc/x and file:/etc/x both name /etc/x
		if strings.HasPrefix(p, "//") {
			p = strings.TrimPrefix(p, "//")
		}

		return &fileResource{path: filepath.FromSlash(p)}
	default:
		return &fileResource{path: location}
	}
}

type fileResource struct {
	path string
}

func (r *fileResource) Exists() bool {
	info, err := os.Stat(r.path)

	return err == nil && !info.IsDir()
}

func (r *fileResource) Open() (io.ReadCloser, error) {
	return os.Open(r.path)
}

func (r *fileResource) Description() string {
	return "file [" + r.path + "]"
}

func (r *fileResource) Filename() string {
	return filepath.Base(r.path)
}

type fsResource struct {
	fsys fs.FS
	name string
}

func (r *fsResource) Exists() bool {
	if r.fsys == nil {
		return false
	}

	info, err := fs.Stat(r.fsys, r.name)

	return err == nil && !info.IsDir()
}

func (r *fsResource) Open() (io.ReadCloser, error) {
	if r.fsys == nil {
		return nil, &fs.PathError{Op: "open", Path: r.name, Err: fs.ErrNotExist}
	}

	return r.fsys.Open(r.name)
}

func (r *fsResource) Description() string {
	return "class path resource [" + r.name + "]"
}

func (r *fsResource) Filename() string {
	return path.Base(r.name)
}
