package annotate

// Engine tuning constants. These are defaults; most are overridable
// through Options.
const (
	// MinFontSize is the smallest effective font size in points.
	MinFontSize = 6.0
	// MaxFontSize is the largest effective font size in points.
	MaxFontSize = 144.0
	// DefaultFontSize is the session default used when an element has
	// no explicit font size.
	DefaultFontSize = 16.0
	// DefaultThickness is the default stroke thickness in pixels.
	DefaultThickness = 2.0
	// DefaultHandleRadius is the default hit radius around a resize
	// handle in pixels.
	DefaultHandleRadius = 6
	// DefaultDragThreshold is the distance in pixels a pointer must
	// travel before a press becomes a drag.
	DefaultDragThreshold = 3
	// DefaultHistoryLimit is the default number of undo snapshots kept.
	DefaultHistoryLimit = 50
	// MinElementSize is the smallest width/height a resize may produce.
	MinElementSize = 1
	// penHitSlop widens pen-stroke hit-testing beyond the stroke width.
	penHitSlop = 3.0
)

// Config holds the session settings consumed by the engine. The settings
// are owned by the host application (its preferences subsystem); the engine
// only reads them. Build one with NewConfig and functional options, or from
// a settings file via the config subpackage.
type Config struct {
	// HandleRadius is the hit radius around resize handles in pixels.
	HandleRadius int32
	// DragThreshold is the click-versus-drag distance in pixels.
	DragThreshold int32
	// HistoryLimit bounds the undo stack depth.
	HistoryLimit int

	// Default element style.
	Color     RGBA
	Thickness float64

	// Default text style.
	FontName   string
	FontSize   float64
	FontWeight int
}

// NewConfig returns a Config with engine defaults applied, then modified
// by the given options.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		HandleRadius:  DefaultHandleRadius,
		DragThreshold: DefaultDragThreshold,
		HistoryLimit:  DefaultHistoryLimit,
		Color:         Red,
		Thickness:     DefaultThickness,
		FontName:      "sans-serif",
		FontSize:      DefaultFontSize,
		FontWeight:    400,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a Config during creation.
type Option func(*Config)

// WithHandleRadius sets the handle hit radius in pixels.
// Non-positive values are ignored.
func WithHandleRadius(r int32) Option {
	return func(c *Config) {
		if r > 0 {
			c.HandleRadius = r
		}
	}
}

// WithDragThreshold sets the click-versus-drag threshold in pixels.
// Negative values are ignored.
func WithDragThreshold(d int32) Option {
	return func(c *Config) {
		if d >= 0 {
			c.DragThreshold = d
		}
	}
}

// WithHistoryLimit bounds the undo stack depth.
// Non-positive values are ignored.
func WithHistoryLimit(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.HistoryLimit = n
		}
	}
}

// WithColor sets the default element color.
func WithColor(col RGBA) Option {
	return func(c *Config) { c.Color = col }
}

// WithThickness sets the default stroke thickness in pixels.
func WithThickness(t float64) Option {
	return func(c *Config) {
		if t > 0 {
			c.Thickness = t
		}
	}
}

// WithFont sets the default font name and size for text elements.
// The size is clamped to [MinFontSize, MaxFontSize] at the point of use,
// not here.
func WithFont(name string, size float64) Option {
	return func(c *Config) {
		if name != "" {
			c.FontName = name
		}
		if size > 0 {
			c.FontSize = size
		}
	}
}
