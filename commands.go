package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hole-distance/internal/config"
	"hole-distance/internal/excel"
	"hole-distance/internal/logging"
	"hole-distance/internal/pipeline"
	"hole-distance/internal/report"
	"hole-distance/internal/server"
)

type globalFlags struct {
	configFile string
	verbose    bool
	quiet      bool
	noColor    bool
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	var flags globalFlags

	root := &cobra.Command{
		Use:   "hole-distance",
		Short: "Generate hole UPDATE statements from a KML course map",
		Long: `hole-distance reads tee ("tii") and basket ("korv") placemarks from a
KML file, measures the distance of every hole and prints SQL UPDATE
statements plus a report of holes with missing data.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default .hole-distance.yaml in . or $HOME)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "only log warnings and errors")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored log output")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("log-format", "auto", "log format (auto, console, json)")
	pf.Int("first", 1, "first hole number")
	pf.Int("last", 100, "last hole number")
	_ = v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = v.BindPFlag("log_format", pf.Lookup("log-format"))
	_ = v.BindPFlag("first", pf.Lookup("first"))
	_ = v.BindPFlag("last", pf.Lookup("last"))

	root.AddCommand(newGenerateCommand(v, &flags), newServeCommand(v, &flags))
	return root
}

func setup(v *viper.Viper, flags *globalFlags) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(v, flags.configFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	log := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Verbose: flags.verbose,
		Quiet:   flags.quiet,
		NoColor: flags.noColor,
	}, os.Stderr)

	if cfg.ConfigFile != "" {
		log.Debug().Str("file", cfg.ConfigFile).Msg("Config loaded")
	}
	return cfg, log, nil
}

func newGenerateCommand(v *viper.Viper, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Print UPDATE statements and a missing-data summary",
		Long: `Reads the input (KML, or .xlsx with a Placemarks sheet of
Name, Description, Coordinates columns) and writes the report to stdout.
Nothing is printed if a placemark has malformed coordinates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("input", args[0])
			}
			cfg, log, err := setup(v, flags)
			if err != nil {
				return err
			}

			rep, err := pipeline.RunFile(cfg.Input, cfg.Universe(), log)
			if err != nil {
				return err
			}

			// Render fully before writing so a failure leaves stdout empty.
			var out bytes.Buffer
			if err := report.Write(&out, cfg.Format, rep); err != nil {
				return err
			}

			if cfg.Xlsx != "" {
				if err := excel.WriteReport(cfg.Xlsx, rep); err != nil {
					return fmt.Errorf("write workbook: %w", err)
				}
				log.Info().Str("file", cfg.Xlsx).Msg("Workbook written")
			}

			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}

	f := cmd.Flags()
	f.StringP("format", "f", "sql", "output format (sql, yaml)")
	f.String("xlsx", "", "also write the results to this workbook")
	_ = v.BindPFlag("format", f.Lookup("format"))
	_ = v.BindPFlag("xlsx", f.Lookup("xlsx"))

	return cmd
}

func newServeCommand(v *viper.Viper, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(v, flags)
			if err != nil {
				return err
			}

			srv := server.New(server.Options{
				Universe:  cfg.Universe(),
				UploadDir: cfg.UploadDir,
				OutputDir: cfg.OutputDir,
				Logger:    log,
			})
			return srv.Run(":" + cfg.Port)
		},
	}

	f := cmd.Flags()
	f.String("port", "9595", "listen port")
	f.String("upload-dir", "uploads", "directory for uploaded files")
	f.String("output-dir", "output", "directory for generated workbooks")
	_ = v.BindPFlag("port", f.Lookup("port"))
	_ = v.BindPFlag("upload_dir", f.Lookup("upload-dir"))
	_ = v.BindPFlag("output_dir", f.Lookup("output-dir"))

	return cmd
}
