package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/winematch/internal/catalog"
	"github.com/vijay-prabhu/winematch/internal/config"
	"github.com/vijay-prabhu/winematch/internal/database"
	"github.com/vijay-prabhu/winematch/internal/output"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the wine catalog",
	Long: `Inspect and manage the wine catalog.

Wines come from one of three sources, set by catalog.source in the config:
  - builtin:  the catalog shipped with winematch
  - file:     a TOML file at catalog.path
  - database: wines imported with 'winematch catalog import'

Examples:
  winematch catalog list
  winematch catalog show 4
  winematch catalog export > wines.toml
  winematch catalog import wines.toml
  winematch catalog history`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wines in the catalog",
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show wine details",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the database catalog with wines from a TOML file",
	Long: `Replace the wines stored in the database with the contents of a TOML
catalog file. The file is validated before anything is written, and the
replacement happens in a single transaction.

Set catalog.source = "database" in the config to recommend from the
imported wines.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as TOML",
	RunE:  runCatalogExport,
}

var catalogHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show catalog imports",
	RunE:  runCatalogHistory,
}

var (
	exportFile   string
	historyLimit int
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogHistoryCmd)

	catalogExportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Write to file instead of stdout")
	catalogHistoryCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of imports to show")
}

// loadCatalog returns the catalog named by the config's catalog source
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.SourceFile:
		return catalog.LoadFile(cfg.Catalog.Path)
	case config.SourceDatabase:
		db, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		items, err := db.ListWines(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load wines: %w", err)
		}
		return catalog.New(items)
	default:
		return catalog.Default(), nil
	}
}

// openStore opens the catalog database and fails if nothing was imported
func openStore(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	n, err := db.CountWines(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to count wines: %w", err)
	}
	if n == 0 {
		db.Close()
		return nil, fmt.Errorf("no wines in database (run 'winematch catalog import <file>')")
	}
	return db, nil
}

// findWine looks up one wine in the configured source. The database is
// queried directly rather than loading the whole catalog.
func findWine(ctx context.Context, cfg *config.Config, id int) (*catalog.Item, error) {
	if cfg.Catalog.Source == config.SourceDatabase {
		db, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		wine, err := db.GetWine(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get wine: %w", err)
		}
		if wine == nil {
			return nil, fmt.Errorf("wine not found: %d", id)
		}
		return wine, nil
	}

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	wine, ok := cat.Get(id)
	if !ok {
		return nil, fmt.Errorf("wine not found: %d", id)
	}
	return &wine, nil
}

// importCatalog replaces the stored wines with the catalog at path. It
// returns the new import and the one it replaced, which is nil on first import.
func importCatalog(ctx context.Context, cfg *config.Config, path string) (*database.Import, *database.Import, error) {
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, nil, err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	prev, err := db.LastImport(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read import history: %w", err)
	}

	imp, err := db.ReplaceCatalog(ctx, path, cat.Items())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to import catalog: %w", err)
	}
	return imp, prev, nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, cat.Items())
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid wine id: %s", args[0])
	}

	cfg, _, err := setup()
	if err != nil {
		return err
	}

	wine, err := findWine(cmd.Context(), cfg, id)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, wine)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	imp, prev, err := importCatalog(cmd.Context(), cfg, args[0])
	if err != nil {
		return err
	}

	logger.Info("catalog imported",
		zap.String("import", imp.ID),
		zap.String("source", args[0]),
		zap.Int("wines", imp.WineCount),
	)

	if outputFmt == "json" {
		return output.JSON(imp)
	}

	fmt.Printf("Imported %d wines from %s (import %s)\n", imp.WineCount, args[0], imp.ID)
	if prev != nil {
		fmt.Printf("Replaced %d wines imported %s\n", prev.WineCount, prev.ImportedAt.Format("Jan 02, 2006 15:04"))
	}
	if cfg.Catalog.Source != config.SourceDatabase {
		fmt.Println("Set catalog.source = \"database\" in your config to use them.")
	}
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	data, err := catalog.Marshal(cat)
	if err != nil {
		return err
	}

	if exportFile != "" {
		if err := os.WriteFile(exportFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportFile, err)
		}
		fmt.Fprintf(os.Stderr, "Exported %d wines to %s\n", cat.Len(), exportFile)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

func runCatalogHistory(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	imports, err := db.ListImports(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list imports: %w", err)
	}

	return output.Output(outputFmt, imports)
}
