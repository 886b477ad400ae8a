package glshell

// Defaults used when no option overrides them.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "OpenGL 2D"
)

// Config holds the shell configuration. Build it with DefaultConfig and
// Options rather than by hand.
type Config struct {
	Width, Height int
	X, Y          int
	Title         string

	// IdleRedraw requests a redraw on every idle tick, which renders as fast
	// as the loop spins instead of only after damage.
	IdleRedraw bool

	// Menu attaches the context menu to the right button.
	Menu bool

	// Draw runs between clear and swap. Nil draws nothing.
	Draw func()
}

// Option configures the shell.
type Option func(*Config)

// DefaultConfig returns an 800x600 window at (0,0) titled "OpenGL 2D", no
// idle redraw and no menu.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Title:  DefaultTitle,
	}
}

// WithSize sets the initial window size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithPosition sets the initial (and restored windowed) position.
func WithPosition(x, y int) Option {
	return func(c *Config) {
		c.X = x
		c.Y = y
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithIdleRedraw enables redraw on every idle tick.
func WithIdleRedraw(enabled bool) Option {
	return func(c *Config) { c.IdleRedraw = enabled }
}

// WithMenu enables the right-button context menu.
func WithMenu(enabled bool) Option {
	return func(c *Config) { c.Menu = enabled }
}

// WithDrawFunc sets the per-frame draw hook.
func WithDrawFunc(draw func()) Option {
	return func(c *Config) { c.Draw = draw }
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
