package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/jacoelho/cssq/internal/httpclient"
	"github.com/jacoelho/cssq/internal/ratelimit"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "b.css"), "b {}")
	write(t, filepath.Join(dir, "nested", "a.CSS"), "a {}")
	write(t, filepath.Join(dir, "notes.txt"), "x")
	single := filepath.Join(dir, "notes.txt")

	got, err := Expand([]string{"-", dir, single, "https://example.com/a.css"})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	want := []string{
		"-",
		filepath.Join(dir, "b.css"),
		filepath.Join(dir, "nested", "a.CSS"),
		single,
		"https://example.com/a.css",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}

	if _, err := Expand([]string{filepath.Join(dir, "missing.css")}); !errors.Is(err, ErrSource) {
		t.Errorf("Expand(missing) error = %v, want %v", err, ErrSource)
	}
}

func TestLoad(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.css" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/css")
		w.Write([]byte("remote { color: red }"))
	}))
	defer server.Close()

	dir := t.TempDir()
	local := filepath.Join(dir, "a.css")
	write(t, local, "local {}")

	loader := NewLoader(httpclient.New(httpclient.Options{}), ratelimit.New(0), 8)
	loader.SetStdin(strings.NewReader("stdin {}"))

	tests := []struct {
		name    string
		want    string
		wantErr error
	}{
		{name: local, want: "local {}"},
		{name: "-", want: "stdin {}"},
		{name: server.URL + "/a.css", want: "remote { "},
		{name: server.URL + "/missing.css", wantErr: ErrStatus},
		{name: filepath.Join(dir, "none.css"), wantErr: ErrSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := loader.Load(context.Background(), tt.name)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if string(doc.Data) != tt.want || doc.Name != tt.name {
				t.Errorf("Load() = %q %q, want %q", doc.Name, doc.Data, tt.want)
			}
		})
	}
}
