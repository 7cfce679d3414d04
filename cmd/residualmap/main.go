package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"residualmap/adapters/excel"
	"residualmap/adapters/postgres"
	"residualmap/adapters/render"
	"residualmap/app"
	"residualmap/internal/config"
	"residualmap/ports"
	"residualmap/ui"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Printf("[Main] loaded environment from .env")
	}

	rootCmd := &cobra.Command{
		Use:   "residualmap",
		Short: "Standardized residual analysis of two categorical variables",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newServeCmd(),
		newMigrateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var outDir string
	var format string
	var title string

	cmd := &cobra.Command{
		Use:   "analyze [file] [var1] [var2]",
		Short: "Compute cell residuals for a variable pair and render both charts",
		Long: `Load a CSV or Excel file, cross-tabulate two categorical columns,
compute standardized Pearson residuals with per-cell p-values, and write a
heatmap and a network chart plus a markdown brief.

Example: residualmap analyze survey.csv AgeGroup Symptom --out out --format svg`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], args[1], args[2], outDir, format, title)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default from OUTPUT_DIR)")
	cmd.Flags().StringVar(&format, "format", "svg", "Chart format: svg or png")
	cmd.Flags().StringVar(&title, "title", "", "Optional heatmap title")

	return cmd
}

func runAnalyze(cmd *cobra.Command, file, var1, var2, outDir, format, title string) error {
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (use svg or png)", format)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = cfg.Paths.OutputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	repo, cleanup, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var reader ports.DatasetReader = excel.NewDataReader(file)
	ds, err := reader.Read()
	if err != nil {
		return err
	}

	service := app.NewAnalysisService(repo)
	analysis, err := service.Run(cmd.Context(), ds, var1, var2)
	if err != nil {
		return err
	}

	renderer, err := configuredRenderService(cfg, var1, var2, title)
	if err != nil {
		return err
	}
	paths, err := renderer.RenderAll(cmd.Context(), &analysis.Records, outDir, format)
	if err != nil {
		return err
	}

	briefPath := filepath.Join(outDir, "brief.md")
	brief := app.NewReportService().BuildMarkdown(analysis)
	if err := os.WriteFile(briefPath, []byte(brief), 0o644); err != nil {
		return fmt.Errorf("failed to write brief: %w", err)
	}
	paths = append(paths, briefPath)

	fmt.Printf("X2=%.3f df=%d p=%.4f n=%d, %d of %d cells significant\n",
		analysis.ChiSquare, analysis.DF, analysis.PValue, analysis.SampleSize,
		len(analysis.SignificantRecords()), analysis.Records.Len())
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP analysis server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			repo, cleanup, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			server := ui.NewServer(cfg, app.NewAnalysisService(repo))
			return server.ListenAndServe()
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.Database.Enabled {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			db, err := postgres.Connect(cfg.Database.URL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(db); err != nil {
				return err
			}
			log.Printf("[Migrate] schema is up to date")
			return nil
		},
	}
}

// openRepository returns a postgres-backed repository when DATABASE_URL is
// set, or nil so the service skips persistence.
func openRepository(cfg *config.Config) (ports.AnalysisRepository, func(), error) {
	if !cfg.Database.Enabled {
		return nil, func() {}, nil
	}

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.Migrate(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return postgres.NewAnalysisRepository(db), func() { db.Close() }, nil
}

func configuredRenderService(cfg *config.Config, var1, var2, title string) (*app.RenderService, error) {
	svc := app.NewRenderService(var1, var2)
	svc.Heatmap.Title = title
	svc.Heatmap.ThemeSize = cfg.Render.ThemeSize
	svc.Heatmap.LabelSize = cfg.Render.LabelSize
	svc.Network.MinWidth = cfg.Render.MinEdge
	svc.Network.MaxWidth = cfg.Render.MaxEdge

	var err error
	if svc.Heatmap.ColorLow, err = render.ParseHex(cfg.Render.ColorLow); err != nil {
		return nil, err
	}
	if svc.Heatmap.ColorHigh, err = render.ParseHex(cfg.Render.ColorHigh); err != nil {
		return nil, err
	}
	if svc.Heatmap.ColorLabels, err = render.ParseHex(cfg.Render.ColorLabels); err != nil {
		return nil, err
	}
	return svc, nil
}
