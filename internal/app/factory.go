package app

import (
	"io"

	"github.com/footprint-tools/verbparse/internal/catalog"
	"github.com/footprint-tools/verbparse/internal/config"
	"github.com/footprint-tools/verbparse/internal/log"
	"github.com/footprint-tools/verbparse/internal/paths"
	"github.com/footprint-tools/verbparse/internal/ui"
	"github.com/footprint-tools/verbparse/internal/ui/style"
	"github.com/footprint-tools/verbparse/parser"
	"github.com/footprint-tools/verbparse/settings"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Application holds everything a command needs.
type Application struct {
	ConfigPath string
	Config     map[string]string
	Settings   settings.Settings
	Parser     *parser.Parser
	Registry   *catalog.Registry
	Logger     log.Leveled
	Output     *ui.Writer
	Styler     style.Stylist
}

// Options configures the application factory.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	PagerDisabled bool
	PagerOverride string

	StyleEnabled bool

	// LogPath overrides the default log file location when logging is
	// enabled in the config.
	LogPath string
}

// New loads the configuration and wires the parser, logger and output.
func New(opts Options) (*Application, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		p, err := paths.ConfigFilePath()
		if err != nil {
			return nil, err
		}
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	s, err := config.ToSettings(cfg)
	if err != nil {
		return nil, err
	}

	var logger log.Leveled = log.NopLogger{}
	if config.Bool(cfg, "enable_log") {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		// Fall back to NopLogger when the log file cannot be opened.
		if l, err := log.New(logPath, log.ParseLevel(cfg["log_level"])); err == nil {
			logger = l
		}
	}

	style.Init(opts.StyleEnabled, cfg)

	writerOpts := []ui.WriterOption{ui.WithConfig(cfg)}
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}

	return &Application{
		ConfigPath: cfgPath,
		Config:     cfg,
		Settings:   s,
		Parser:     parser.New(parser.WithSettings(s), parser.WithLogger(logger)),
		Registry:   catalog.NewRegistry(),
		Logger:     logger,
		Output:     ui.NewWriter(writerOpts...),
		Styler:     style.NewStyler(),
	}, nil
}

// NewForTesting returns an Application with default settings writing plain
// text to out. The config path points at a file that does not exist yet.
func NewForTesting(out io.Writer, configPath string) *Application {
	s := settings.Default()
	return &Application{
		ConfigPath: configPath,
		Config:     config.WithDefaults(nil),
		Settings:   s,
		Parser:     parser.New(parser.WithSettings(s)),
		Registry:   catalog.NewRegistry(),
		Logger:     log.NopLogger{},
		Output:     ui.NewWriterTo(out, ui.WithPagerDisabled()),
		Styler:     style.NopStyler{},
	}
}

// Close releases application resources.
func Close(app *Application) error {
	if app != nil && app.Logger != nil {
		return app.Logger.Close()
	}
	return nil
}
