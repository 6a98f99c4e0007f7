package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ARQAP/AppArchivo-Backend/src/config"
	"github.com/ARQAP/AppArchivo-Backend/src/dtos"
	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/ARQAP/AppArchivo-Backend/src/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type layoutOptions struct {
	file   string
	out    string
	find   string
	format string
	dtos.LayoutOptionsDTO
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Assign rack/level/box locations to a comprobantes file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := config.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runLayout(cmd.OutOrStdout(), cfg, logger, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Input file, .csv/.xlsx/.xlsm (required)")
	cmd.Flags().StringVar(&opts.out, "out", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&opts.find, "find", "", "Only export these numbers, comma or newline separated")
	cmd.Flags().StringVar(&opts.format, "format", "csv", "Output format: csv or xlsx")
	cmd.Flags().StringVar(&opts.Policy, "policy", "", "Placement policy: age-ascending, occupancy-ranked, sequential, front-back")
	cmd.Flags().IntVar(&opts.BoxCapacity, "box-capacity", 0, "Records per box (default from config)")
	cmd.Flags().IntVar(&opts.PositionsPerLevel, "positions-per-level", 0, "Boxes per level (default from config)")
	cmd.Flags().IntVar(&opts.LevelsPerRack, "levels-per-rack", 0, "Levels per rack (default from config)")
	cmd.Flags().StringVar(&opts.RackID, "rack", "", "Rack id for the single-rack policies")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runLayout(stdout io.Writer, cfg config.Config, logger *zap.Logger, opts layoutOptions) error {
	policy, layout := opts.Apply(cfg.DefaultPolicy, cfg.Layout)

	in, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("no se pudo abrir %s: %w", opts.file, err)
	}
	defer in.Close()

	layoutService := services.NewLayoutService(services.NewImportService(logger), services.NewPlacementService(logger), logger)
	result, err := layoutService.ImportAndPlace(in, filepath.Base(opts.file), policy, layout)
	if err != nil {
		return err
	}

	placements := result.Placements
	if opts.find != "" {
		batch := services.NewLookupService(logger).FindMany(placements, opts.find)
		if !batch.Found {
			return fmt.Errorf("ninguno de los comprobantes fue encontrado")
		}
		placements = batch.Placements
	}

	var out io.Writer = stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("no se pudo crear %s: %w", opts.out, err)
		}
		defer f.Close()
		out = f
	}

	return writePlacements(out, opts.format, placements)
}

func writePlacements(w io.Writer, format string, placements []models.PlacementModel) error {
	switch format {
	case "csv":
		return services.WriteCSV(w, placements)
	case "xlsx":
		return services.WriteExcel(w, "Ubicaciones", placements)
	}
	return fmt.Errorf("formato %q no soportado, use csv o xlsx", format)
}
