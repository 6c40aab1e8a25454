package web

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"podium/metrics"
)

// Renderer is the templating boundary the dispatcher renders error
// pages through.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// ErrorView is the data handed to error page templates. Detail is
// populated only when debug mode is on.
type ErrorView struct {
	Status int
	Title  string
	Detail string
}

// Dispatcher converts one caught failure into exactly one outbound
// response, negotiated between JSON and rendered HTML from the
// request's accepted content types. It never re-raises and never logs.
type Dispatcher struct {
	renderer Renderer
	debug    bool
}

func NewDispatcher(renderer Renderer, debug bool) *Dispatcher {
	return &Dispatcher{renderer: renderer, debug: debug}
}

// Dispatch writes the response for err. defaultStatus applies when the
// failure carries no HTTP shape of its own.
func (d *Dispatcher) Dispatch(w http.ResponseWriter, r *http.Request, defaultStatus int, err error) {
	f := AsFailure(err)
	if acceptsJSON(r) {
		d.dispatchJSON(w, defaultStatus, f)
		return
	}
	d.dispatchHTML(w, statusOf(f, defaultStatus), f)
}

// dispatchJSON writes {"error": message}. HTTP-shaped and OAuth-shaped
// failures override the default status and contribute their headers;
// the two kinds never coexist on one failure.
func (d *Dispatcher) dispatchJSON(w http.ResponseWriter, defaultStatus int, f *Failure) {
	status := defaultStatus
	switch f.Kind {
	case KindHTTP, KindOAuth:
		if f.Status != 0 {
			status = f.Status
		}
		copyHeader(w.Header(), f.Header)
	}

	metrics.RequestFailures.WithLabelValues("json", strconv.Itoa(status)).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": f.Error()})
}

// dispatchHTML renders the error template matching the status code,
// falling back to a plain-text body if rendering itself fails.
func (d *Dispatcher) dispatchHTML(w http.ResponseWriter, status int, f *Failure) {
	metrics.RequestFailures.WithLabelValues("html", strconv.Itoa(status)).Inc()

	copyHeader(w.Header(), f.Header)

	view := ErrorView{Status: status, Title: http.StatusText(status)}
	if d.debug {
		view.Detail = f.Error()
	}

	body, err := d.renderer.Render(templateForStatus(status), view)
	if err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func statusOf(f *Failure, defaultStatus int) int {
	if f.Kind != KindGeneric && f.Status != 0 {
		return f.Status
	}
	return defaultStatus
}

// templateForStatus maps a status code to its error template. Anything
// without a dedicated page renders the generic server error.
func templateForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "error/401"
	case http.StatusForbidden:
		return "error/403"
	case http.StatusNotFound:
		return "error/404"
	}
	return "error/500"
}

// acceptsJSON reports whether application/json appears among the
// request's accepted content types.
func acceptsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType := strings.TrimSpace(part)
		if i := strings.IndexByte(mediaType, ';'); i >= 0 {
			mediaType = strings.TrimSpace(mediaType[:i])
		}
		if strings.EqualFold(mediaType, "application/json") {
			return true
		}
	}
	return false
}

func copyHeader(dst, src http.Header) {
	for key, values := range src {
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
