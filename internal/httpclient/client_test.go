package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewPoolFollowsJobs(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		perHost int
	}{
		{name: "zero jobs", opts: Options{}, perHost: 1},
		{name: "eight jobs", opts: Options{Jobs: 8, Timeout: 5 * time.Second}, perHost: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := New(tt.opts)
			if client.Timeout != tt.opts.Timeout {
				t.Errorf("Timeout = %v, want %v", client.Timeout, tt.opts.Timeout)
			}
			st, ok := client.Transport.(*stylesheetTransport)
			if !ok {
				t.Fatalf("Transport = %T, want *stylesheetTransport", client.Transport)
			}
			transport := st.base.(*http.Transport)
			if got := transport.MaxConnsPerHost; got != tt.perHost {
				t.Errorf("MaxConnsPerHost = %d, want %d", got, tt.perHost)
			}
			if got := transport.MaxIdleConns; got != 4*tt.perHost {
				t.Errorf("MaxIdleConns = %d, want %d", got, 4*tt.perHost)
			}
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	tests := []struct {
		name   string
		agent  string
		preset string
		want   string
	}{
		{name: "default agent", want: DefaultUserAgent},
		{name: "configured agent", agent: "ci-lint/1.0", want: "ci-lint/1.0"},
		{name: "request header kept", agent: "ci-lint/1.0", preset: "custom", want: "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(chan http.Header, 1)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen <- r.Header.Clone()
			}))
			defer srv.Close()

			req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
			if err != nil {
				t.Fatal(err)
			}
			if tt.preset != "" {
				req.Header.Set("User-Agent", tt.preset)
			}
			resp, err := New(Options{UserAgent: tt.agent}).Do(req)
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			resp.Body.Close()

			header := <-seen
			agent, accept := header.Get("User-Agent"), header.Get("Accept")
			if agent != tt.want {
				t.Errorf("User-Agent = %q, want %q", agent, tt.want)
			}
			if accept != "text/css,*/*;q=0.1" {
				t.Errorf("Accept = %q, want text/css first", accept)
			}
		})
	}
}
