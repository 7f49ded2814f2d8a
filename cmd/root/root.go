// Package root contains the root command for the application
package root

import (
	"path/filepath"
	"sync"

	"github.com/meghaa105/personal-finance-sub000/internal/categorizer"
	"github.com/meghaa105/personal-finance-sub000/internal/config"
	"github.com/meghaa105/personal-finance-sub000/internal/ingest"
	"github.com/meghaa105/personal-finance-sub000/internal/logging"
	"github.com/meghaa105/personal-finance-sub000/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pft",
		Short: "A CLI tool to import and categorize personal finance records.",
		Long: `pft imports bank statements (CSV and PDF) and Splitwise exports into a
local transaction store, inferring transaction types and categories along
the way. Duplicate records are skipped on import.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pft!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Warnf("Failed to load configuration, using defaults: %v", err)
				Cfg = &config.Config{}
			}

			if DataDir != "" {
				Cfg.Data.Directory = DataDir
			}

			Log = config.ConfigureLogging(Cfg)
			logging.SetDefault(logging.NewLogrusAdapterFromLogger(Log))
		},
		// Save any custom-mapping changes back to disk after any command runs
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cat := categorizerInstance; cat != nil {
				if err := cat.Save(); err != nil {
					Log.Warnf("Failed to save category mappings: %v", err)
				}
			}
		},
	}

	// DataDir overrides the configured data directory when set
	DataDir string

	// Import command flags
	ImportType   string
	ImportIssuer string
	AssumeYes    bool
	DryRun       bool

	// Categories command flags
	CategoryName string
	Pattern      string

	// Export command flags
	OutputFile string

	buildOnce           sync.Once
	categorizerInstance *categorizer.Categorizer
	transactionStore    *store.TransactionStore
	coordinatorInstance *ingest.Coordinator
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&DataDir, "data-dir", "", "Data directory (overrides config)")
}

func build() {
	buildOnce.Do(func() {
		dataDir := Cfg.Data.Directory
		logger := logging.NewLogrusAdapterFromLogger(Log)

		categoryStore := store.NewCategoryStore(filepath.Join(dataDir, "categories.yaml"), logger)
		categorizerInstance = categorizer.New(categoryStore, logger)
		transactionStore = store.NewTransactionStore(filepath.Join(dataDir, "transactions.yaml"), logger)
		coordinatorInstance = ingest.New(categorizerInstance, transactionStore, nil, Cfg.Import.SplitwiseUser, logger)
	})
}

// Categorizer returns the shared categorizer, building it on first use.
func Categorizer() *categorizer.Categorizer {
	build()
	return categorizerInstance
}

// TransactionStore returns the shared transaction store.
func TransactionStore() *store.TransactionStore {
	build()
	return transactionStore
}

// Coordinator returns the shared ingestion coordinator.
func Coordinator() *ingest.Coordinator {
	build()
	return coordinatorInstance
}
