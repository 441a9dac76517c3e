// Package annotate implements the annotation interaction engine used by a
// screen-capture tool: the mutable collection of drawn elements (rectangles,
// circles, arrows, freehand strokes, text), the drag/resize interaction state
// machine, hit-testing, and linear undo/redo history.
//
// # Overview
//
// The engine is deliberately free of any rendering or windowing code. A host
// application feeds it pointer events (already translated to pixel
// coordinates), reads back the element collection each frame, and supplies
// creator callbacks to the geometry cache for platform-specific tessellation
// and text layout. See the cache and render subpackages for that boundary.
//
// # Quick Start
//
//	import "github.com/snapmark/annotate"
//
//	cfg := annotate.NewConfig()
//	s := annotate.NewSession(cfg, annotate.WithBounds(annotate.XYWH(0, 0, 1920, 1080)))
//	s.SetTool(annotate.ToolRectangle)
//
//	s.PointerDown(100, 100)
//	s.PointerMove(300, 220)
//	s.PointerUp(300, 220) // commits the rectangle and pushes a history snapshot
//
//	s.Undo()
//	s.Redo()
//
// # Architecture
//
//   - Root package: geometry primitives, DrawingElement, interaction
//     algorithms, ElementManager, HistoryManager, Session facade
//   - cache: per-element render-artifact cache with dirty tracking
//   - render: tool kind -> renderer dispatch over an opaque drawing context
//   - config: session settings loaded from YAML
//   - text: text measurement and font-size fitting
//
// # Threading
//
// All operations are synchronous and intended to run on the host's UI/input
// thread. Nothing in this package blocks or spawns goroutines.
package annotate
