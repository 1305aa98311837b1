package cmd

// Options holds the shared command-line options for the prsummary CLI.
type Options struct {
	Format        string // text, json or markdown; empty = config default
	APIURL        string // GitHub API root; empty = GITHUB_API_URL, config, api.github.com
	Timeout       string // request timeout, e.g. 30s; empty = config or http default
	MaxTitleWidth int    // -1 = config value, 0 = unlimited
	NoColor       bool
	Verbosity     int
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		MaxTitleWidth: -1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat sets the output format (text, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithAPIURL sets the GitHub API root.
func WithAPIURL(url string) Option {
	return func(o *Options) {
		o.APIURL = url
	}
}

// WithTimeout sets the request timeout (e.g., "30s", "2m").
func WithTimeout(timeout string) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithMaxTitleWidth sets the title truncation width.
func WithMaxTitleWidth(width int) Option {
	return func(o *Options) {
		o.MaxTitleWidth = width
	}
}

// WithNoColor disables colored output.
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
