// Package source resolves command line inputs into stylesheet documents.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jacoelho/cssq/internal/ratelimit"
)

// Stdin is the input name that reads standard input.
const Stdin = "-"

var (
	ErrSource = errors.New("source error")
	ErrStatus = errors.New("unexpected HTTP status")
)

// Document is a loaded input.
type Document struct {
	Name string
	Data []byte
}

// IsRemote reports whether name is fetched over HTTP.
func IsRemote(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

// Expand replaces each directory in inputs with the *.css files below it,
// sorted, and keeps files, URLs and stdin as given.
func Expand(inputs []string) ([]string, error) {
	var out []string
	for _, in := range inputs {
		if in == Stdin || IsRemote(in) {
			out = append(out, in)
			continue
		}
		info, err := os.Stat(in)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSource, err)
		}
		if !info.IsDir() {
			out = append(out, in)
			continue
		}

		var found []string
		err = filepath.WalkDir(in, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".css") {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSource, in, err)
		}
		slices.Sort(found)
		out = append(out, found...)
	}
	return out, nil
}

// Loader reads documents. Reads stop one byte past maxSize so the parser
// can report oversized input without buffering all of it.
type Loader struct {
	client  *http.Client
	limiter *ratelimit.Limiter
	maxSize int64
	stdin   io.Reader
}

func NewLoader(client *http.Client, limiter *ratelimit.Limiter, maxSize int64) *Loader {
	return &Loader{
		client:  client,
		limiter: limiter,
		maxSize: maxSize,
		stdin:   os.Stdin,
	}
}

func (l *Loader) SetStdin(r io.Reader) {
	l.stdin = r
}

func (l *Loader) Load(ctx context.Context, name string) (Document, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case name == Stdin:
		data, err = l.read(l.stdin)
	case IsRemote(name):
		data, err = l.fetch(ctx, name)
	default:
		data, err = l.file(name)
	}
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: %w", ErrSource, name, err)
	}
	return Document{Name: name, Data: data}, nil
}

func (l *Loader) read(r io.Reader) ([]byte, error) {
	if l.maxSize > 0 {
		r = io.LimitReader(r, l.maxSize+1)
	}
	return io.ReadAll(r)
}

func (l *Loader) file(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.read(f)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	return l.read(resp.Body)
}
