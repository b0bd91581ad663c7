package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"AstroVision/internal/app"
	"AstroVision/internal/config"
	"AstroVision/internal/domain"
	"AstroVision/internal/logging"
	"AstroVision/internal/usecase"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "astrovision",
		Short:        "Astrology reports, blog and admin API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("ASTRO_VISION_CONFIG"), "path to the YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(newServeCommand(opts), newChartCommand())
	return root
}

func (o *rootOptions) load() config.Config {
	cfg := config.LoadFrom(o.configPath)
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	return cfg
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.load()
			logger := logging.New(cfg.Logging)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				logger.Error("failed to initialise application", "error", err)
				return err
			}

			if err := application.Run(ctx); err != nil {
				logger.Error("application stopped with error", "error", err)
				return err
			}
			return nil
		},
	}
}

type chartOptions struct {
	name, dob, tob, location            string
	partnerName, partnerDOB, partnerTOB string
	partnerLocation                     string
}

func newChartCommand() *cobra.Command {
	opts := &chartOptions{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the derived chart metrics as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject, err := domain.ParseBirthInput(opts.name, "", opts.dob, opts.tob, opts.location)
			if err != nil {
				return fmt.Errorf("subject: %w", err)
			}

			var partner *domain.BirthInput
			if opts.partnerDOB != "" {
				p, err := domain.ParseBirthInput(opts.partnerName, "", opts.partnerDOB, opts.partnerTOB, opts.partnerLocation)
				if err != nil {
					return fmt.Errorf("partner: %w", err)
				}
				partner = &p
			}

			report := usecase.NewReportService(usecase.ReportDeps{}).Calculate(subject, partner)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "full name")
	f.StringVar(&opts.dob, "dob", "", "date of birth (YYYY-MM-DD)")
	f.StringVar(&opts.tob, "tob", "", "time of birth (HH:MM)")
	f.StringVar(&opts.location, "location", "", "place of birth")
	f.StringVar(&opts.partnerName, "partner-name", "", "partner full name")
	f.StringVar(&opts.partnerDOB, "partner-dob", "", "partner date of birth")
	f.StringVar(&opts.partnerTOB, "partner-tob", "", "partner time of birth")
	f.StringVar(&opts.partnerLocation, "partner-location", "", "partner place of birth")
	_ = cmd.MarkFlagRequired("dob")

	return cmd
}
