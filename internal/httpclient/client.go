// Package httpclient builds the client that fetches remote stylesheets.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

// DefaultUserAgent identifies cssq to the servers it fetches from.
const DefaultUserAgent = "cssq"

// Options controls the stylesheet client.
type Options struct {
	// Timeout bounds a whole fetch, body included. Zero means no limit.
	Timeout time.Duration
	// Jobs is how many documents may be fetched at once; the connection
	// pool is sized so each job keeps a warm connection per host.
	Jobs int
	// UserAgent is sent on every request. Empty uses DefaultUserAgent.
	UserAgent string
}

// New creates the client used to fetch remote stylesheets.
func New(opts Options) *http.Client {
	jobs := max(opts.Jobs, 1)
	agent := opts.UserAgent
	if agent == "" {
		agent = DefaultUserAgent
	}

	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		DialContext:            dialer.DialContext,
		ForceAttemptHTTP2:      true,
		TLSHandshakeTimeout:    10 * time.Second,
		ResponseHeaderTimeout:  10 * time.Second,
		IdleConnTimeout:        30 * time.Second,
		MaxIdleConns:           4 * jobs,
		MaxIdleConnsPerHost:    jobs,
		MaxConnsPerHost:        jobs,
		MaxResponseHeaderBytes: 64 << 10,
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: &stylesheetTransport{base: transport, agent: agent},
	}
}

// stylesheetTransport labels requests as coming from cssq and asking for CSS.
type stylesheetTransport struct {
	base  http.RoundTripper
	agent string
}

func (t *stylesheetTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.agent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "text/css,*/*;q=0.1")
	}
	return t.base.RoundTrip(req)
}
