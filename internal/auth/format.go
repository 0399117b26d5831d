package auth

import (
	"net/http"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

// Format selects the rendering of greeting responses.
type Format int

const (
	FormatPlain Format = iota
	FormatJSON
	FormatHTML
)

// ParseFormat maps the format query parameter onto the closed enum.
// Unknown values fall back to plain text.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	case "html":
		return FormatHTML
	default:
		return FormatPlain
	}
}

// String returns the query-parameter spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatHTML:
		return "html"
	default:
		return "plain"
	}
}

type renderFunc func(w http.ResponseWriter, status int, message string)

var renderers = map[Format]renderFunc{
	FormatJSON: func(w http.ResponseWriter, status int, message string) {
		httpx.JSON(w, status, map[string]string{"message": message})
	},
	FormatHTML: func(w http.ResponseWriter, status int, message string) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte("<h1>" + message + "</h1>"))
	},
	FormatPlain: func(w http.ResponseWriter, status int, message string) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(message))
	},
}

// Render writes message in the given format.
func (f Format) Render(w http.ResponseWriter, status int, message string) {
	render, ok := renderers[f]
	if !ok {
		render = renderers[FormatPlain]
	}
	render(w, status, message)
}
