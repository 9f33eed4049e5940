package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/fieldedit"
	"github.com/iw2rmb/fieldedit/form"
	"github.com/iw2rmb/fieldedit/internal/logging"
	"github.com/iw2rmb/fieldedit/stringedit"
	"github.com/iw2rmb/fieldedit/textfield"
)

//go:embed sample.yaml
var sampleForm []byte

type config struct {
	Form    string `mapstructure:"form"`
	Locale  string `mapstructure:"locale"`
	Width   int    `mapstructure:"width"`
	NoColor bool   `mapstructure:"no_color"`
	Log     struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
		Debug bool   `mapstructure:"debug"`
	} `mapstructure:"log"`
}

func init() {
	// Query the background before Bubble Tea owns the terminal.
	_ = lipgloss.HasDarkBackground()
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "fieldedit-demo",
		Short:         "Edit a form of formatted fields",
		Version:       fieldedit.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config
			if err := v.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("decode config: %w", err)
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./fieldedit.yaml)")
	flags.String("form", "", "form definition (YAML); the built-in sample when empty")
	flags.String("locale", stringedit.DefaultLocale.String(), "BCP 47 locale for number formatting")
	flags.Int("width", 40, "field width in cells")
	flags.Bool("no-color", false, "render without colors")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "fieldedit.log", "log destination")
	flags.Bool("debug", false, "panic on editor contract violations")

	_ = v.BindPFlag("form", flags.Lookup("form"))
	_ = v.BindPFlag("locale", flags.Lookup("locale"))
	_ = v.BindPFlag("width", flags.Lookup("width"))
	_ = v.BindPFlag("no_color", flags.Lookup("no-color"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.file", flags.Lookup("log-file"))
	_ = v.BindPFlag("log.debug", flags.Lookup("debug"))

	cmd.AddCommand(newCheckCmd(v))
	return cmd
}

func readConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("FIELDEDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("fieldedit")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func loadSpec(path string) (*form.Spec, error) {
	if path == "" {
		return form.Parse(sampleForm)
	}
	return form.Load(path)
}

func buildForm(cfg config, logger *zap.Logger) (*form.Form, error) {
	spec, err := loadSpec(cfg.Form)
	if err != nil {
		return nil, err
	}
	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", cfg.Locale, err)
	}
	return form.Build(spec, form.Options{
		Logger:    logger,
		Locale:    locale,
		Width:     cfg.Width,
		Clipboard: textfield.SystemClipboard{},
	})
}

func run(out io.Writer, cfg config) error {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Debug,
		OutputPath:  cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	f, err := buildForm(cfg, logger)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(newModel(f), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	m := final.(model)
	if m.values == nil {
		logger.Info("form cancelled")
		return nil
	}
	logger.Info("form submitted", zap.Int("fields", len(m.values)))
	return writeValues(out, m.values)
}

func writeValues(out io.Writer, values map[string]any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(values); err != nil {
		return fmt.Errorf("encode values: %w", err)
	}
	return enc.Close()
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check [form.yaml]",
		Short: "Validate a form definition without running it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString("form")
			if len(args) == 1 {
				path = args[0]
			}
			spec, err := loadSpec(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d fields\n", spec.Title, len(spec.Fields))
			return nil
		},
	}
}
