package cmds

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tvshow/internal/area"
	"tvshow/internal/bangumi"
	"tvshow/internal/broadcast"
	"tvshow/internal/config"
	"tvshow/internal/logging"
	"tvshow/internal/render"
	"tvshow/internal/tvshow"
)

// rootFlags はコマンドラインフラグの値
type rootFlags struct {
	cfgFile  string
	area     string
	hours    int
	mode     string
	verbose  bool
	timeout  time.Duration
	logLevel string
	logFile  string
	at       string
}

func NewRootCLI() *cobra.Command {
	var f rootFlags

	rootCmd := &cobra.Command{
		Use:           "tvshow",
		Short:         "Display Japanese TV schedules in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &f)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			loc, err := cfg.TimeLocation()
			if err != nil {
				return err
			}
			now := time.Now().In(loc)
			if f.at != "" {
				if now, err = broadcast.ParseStamp(f.at, loc); err != nil {
					return err
				}
			}

			mode, err := render.ParseMode(cfg.Mode)
			if err != nil {
				return err
			}

			client := bangumi.NewClient(&http.Client{Timeout: cfg.Timeout},
				bangumi.WithBaseURL(cfg.BaseURL),
				bangumi.WithUserAgent(cfg.UserAgent),
				bangumi.WithLogger(logger))

			return tvshow.New(client, logger).Run(cmd.Context(), tvshow.Options{
				Area:    cfg.Area,
				Hours:   cfg.Hours,
				Mode:    mode,
				Verbose: cfg.Verbose,
				Now:     now,
			}, cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(NewAreasCLI())

	flags := rootCmd.Flags()
	flags.StringVar(&f.cfgFile, "config", "", "YAML config file")
	flags.StringVarP(&f.area, "area", "a", area.DefaultName, "broadcast area (run \"tvshow areas\" for the list)")
	flags.IntVarP(&f.hours, "hours", "t", config.DefaultHours, "how many hours ahead to show (1-168)")
	flags.StringVarP(&f.mode, "mode", "m", string(render.ModeGrid), "output format: grid or list")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "show description and link of each program (list mode)")
	flags.DurationVar(&f.timeout, "timeout", bangumi.DefaultTimeout, "HTTP request timeout")
	flags.StringVar(&f.logLevel, "log-level", logging.DefaultLevel, "log level: debug, info, warn or error")
	flags.StringVar(&f.logFile, "log-file", "", "also write logs to this file")
	flags.StringVar(&f.at, "at", "", "show the schedule as of this time (YYYYMMDDHHMM) instead of now")

	return rootCmd
}

// loadConfig は設定ファイルを読み、明示的に指定されたフラグで上書きする
func loadConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(f.cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("area") {
		cfg.Area = f.area
	}
	if flags.Changed("hours") {
		cfg.Hours = f.hours
	}
	if flags.Changed("mode") {
		cfg.Mode = f.mode
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if flags.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.FileName = f.logFile
	}

	if err = cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid settings")
	}
	return cfg, nil
}
