package layout

import (
	"sync"

	"github.com/arthur-debert/sugary/pkg/logging"
	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/rs/zerolog"
)

// Renderer draws panels with the fragments of one style registry.
type Renderer struct {
	styler *style.Styler
}

// NewRenderer returns a renderer over styler; nil selects the default
// ANSI styler.
func NewRenderer(styler *style.Styler) *Renderer {
	if styler == nil {
		styler = style.NewStyler(nil)
	}
	return &Renderer{styler: styler}
}

// logger is looked up per call so output follows the current
// logging.SetupLogger configuration.
func (r *Renderer) logger() zerolog.Logger {
	return logging.GetLogger("layout")
}

// Styler returns the styler the renderer styles titles with.
func (r *Renderer) Styler() *style.Styler {
	return r.styler
}

var defaultRenderer = sync.OnceValue(func() *Renderer { return NewRenderer(nil) })

// Default returns the shared renderer over the default registry.
func Default() *Renderer {
	return defaultRenderer()
}
