package render

import (
	"log/slog"

	"github.com/snapmark/annotate"
)

// Registry maps tool kinds to renderers. Dispatch is a pure map lookup
// with a default fallback; the tool set is closed, so the fallback is
// defensive rather than an extension point.
type Registry struct {
	renderers    map[annotate.DrawingTool]Renderer
	fallback     Renderer
	handleRadius int32
}

// RegistryOption configures a Registry during creation.
type RegistryOption func(*Registry)

// WithHandleRadius sets the visual radius of interaction handles in
// pixels. Non-positive values are ignored.
func WithHandleRadius(r int32) RegistryOption {
	return func(reg *Registry) {
		if r > 0 {
			reg.handleRadius = r
		}
	}
}

// NewRegistry creates a registry with the built-in renderer for every
// drawable tool already registered.
func NewRegistry(opts ...RegistryOption) *Registry {
	reg := &Registry{
		renderers:    make(map[annotate.DrawingTool]Renderer),
		handleRadius: annotate.DefaultHandleRadius,
	}
	for _, opt := range opts {
		opt(reg)
	}

	box := boxSelection{handleRadius: reg.handleRadius}
	reg.fallback = fallbackRenderer{box}
	reg.Register(annotate.ToolRectangle, rectangleRenderer{box})
	reg.Register(annotate.ToolCircle, circleRenderer{box})
	reg.Register(annotate.ToolArrow, arrowRenderer{box})
	reg.Register(annotate.ToolPen, penRenderer{box})
	reg.Register(annotate.ToolText, textRenderer{box})
	return reg
}

// Register installs (or replaces) the renderer for a tool. Nil renderers
// are ignored.
func (reg *Registry) Register(tool annotate.DrawingTool, r Renderer) {
	if r == nil {
		return
	}
	reg.renderers[tool] = r
}

// ForTool returns the renderer for a tool, falling back to the default
// renderer when the tool is unmapped.
func (reg *Registry) ForTool(tool annotate.DrawingTool) Renderer {
	if r, ok := reg.renderers[tool]; ok {
		return r
	}
	annotate.Logger().Warn("render: no renderer for tool, using fallback",
		slog.String("tool", tool.String()))
	return reg.fallback
}

// ForElement returns the renderer for the element's tool.
func (reg *Registry) ForElement(el *annotate.DrawingElement) Renderer {
	return reg.ForTool(el.Tool)
}
