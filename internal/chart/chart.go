// Package chart renders category summaries as standalone HTML charts.
// The actual drawing is delegated to go-echarts; this package only maps
// summaries onto chart series.
package chart

import (
	"io"
	"strings"

	"github.com/outlay-dev/outlay/internal/report"
)

// Renderer draws one chart kind from a category summary.
type Renderer interface {
	Render(w io.Writer, s report.Summary) error
	Kind() string
}

// Registry holds named renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds a renderer. Panics on duplicate kind.
func (r *Registry) Register(rend Renderer) {
	key := strings.ToLower(rend.Kind())
	if _, ok := r.renderers[key]; ok {
		panic("duplicate chart kind: " + key)
	}
	r.renderers[key] = rend
}

// Get returns the renderer for kind, or nil.
func (r *Registry) Get(kind string) Renderer {
	return r.renderers[strings.ToLower(kind)]
}

// Kinds returns the registered chart kinds.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.renderers))
	for k := range r.renderers {
		kinds = append(kinds, k)
	}
	return kinds
}

// DefaultRegistry returns a registry with all built-in renderers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&PieRenderer{})
	r.Register(&BarRenderer{})
	return r
}
