package request

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// Lookup resolves a single submitted value.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// MapLookup is an in-memory Lookup, handy for tests and fixtures.
type MapLookup map[string]string

func (m MapLookup) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

type Option func(*Accessor)

// WithLogger injects the logger used to report form parse failures.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Accessor) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Accessor reads query and POST values from a request. The body is parsed at
// most once.
type Accessor struct {
	req    *http.Request
	logger *slog.Logger

	parseOnce sync.Once
	post      url.Values
}

// New wraps req. A nil request yields an accessor with no values.
func New(req *http.Request, options ...Option) *Accessor {
	a := &Accessor{req: req, logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Get returns a query string value.
func (a *Accessor) Get(key string) (string, bool) {
	if a == nil || a.req == nil || a.req.URL == nil {
		return "", false
	}
	return first(a.req.URL.Query(), key)
}

// Post returns a value from the parsed request body.
func (a *Accessor) Post(key string) (string, bool) {
	if a == nil || a.req == nil {
		return "", false
	}
	a.parseOnce.Do(a.parse)
	return first(a.post, key)
}

// Request checks the body first and then the query string.
func (a *Accessor) Request(key string) (string, bool) {
	if value, ok := a.Post(key); ok {
		return value, true
	}
	return a.Get(key)
}

// Lookup satisfies Lookup using Request.
func (a *Accessor) Lookup(key string) (string, bool) {
	return a.Request(key)
}

func (a *Accessor) parse() {
	if err := a.req.ParseForm(); err != nil {
		a.logger.Warn("request: parse form", "error", err, "method", a.req.Method)
		return
	}
	a.post = a.req.PostForm
}

func first(values url.Values, key string) (string, bool) {
	list, ok := values[key]
	if !ok || len(list) == 0 {
		return "", false
	}
	return list[0], true
}

// CurrentURL joins home with the request path. The query string is dropped.
// When home is empty the scheme and host are taken from the request;
// X-Forwarded-Proto is honoured only for http and https.
func CurrentURL(req *http.Request, home string) string {
	if req == nil || req.URL == nil {
		return strings.TrimRight(home, "/")
	}
	path := req.URL.EscapedPath()

	base := strings.TrimRight(strings.TrimSpace(home), "/")
	if base == "" {
		scheme := "http"
		if req.TLS != nil {
			scheme = "https"
		}
		switch forwarded := strings.ToLower(strings.TrimSpace(req.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			scheme = forwarded
		}
		base = scheme + "://" + req.Host
	}
	if path == "" || path == "/" {
		return base + "/"
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
