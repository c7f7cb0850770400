package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/iwvelando/housing-budget/internal/config"
	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/internal/storage"
	"go.uber.org/zap"
)

const usage = `usage: housing-budget-samples -db samples.db <command> [args]

commands:
  import <file.csv>                 record samples (city,district,propertyType,price)
  list [city]                       print samples as CSV
  delete <city> <district> <type>   remove one sample
  count                             print the number of samples
`

func main() {
	dbPath := flag.String("db", "samples.db", "path to the SQLite price-sample database")
	catalogFile := flag.String("catalog", "", "optional catalog YAML used to check imported cities and districts")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	logger, err := config.NewLogger(config.LoggingConfig{Format: "console"}, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	store, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		logger.Fatal("failed to open price-sample database",
			zap.String("op", "main"),
			zap.String("db", *dbPath),
			zap.Error(err),
		)
	}
	defer func() {
		_ = store.Close()
	}()
	if err := store.EnsureSchema(); err != nil {
		logger.Fatal("failed to prepare price-sample schema",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	args := flag.Args()
	switch args[0] {
	case "import":
		if len(args) != 2 {
			flag.Usage()
			os.Exit(2)
		}
		catalog, err := config.ReferenceConfig{CatalogFile: *catalogFile}.LoadCatalog()
		if err != nil {
			logger.Fatal("failed to load reference catalog",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		err = importSamples(logger, store, catalog, args[1])
		if err != nil {
			logger.Fatal("import failed",
				zap.String("op", "main"),
				zap.String("file", args[1]),
				zap.Error(err),
			)
		}
	case "list":
		var samples []reference.PriceSample
		if len(args) > 1 {
			samples, err = store.SamplesForCity(args[1])
		} else {
			samples, err = store.ListSamples()
		}
		if err == nil {
			err = storage.WriteSamplesCSV(os.Stdout, samples)
		}
		if err != nil {
			logger.Fatal("failed to list samples",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	case "delete":
		if len(args) != 4 {
			flag.Usage()
			os.Exit(2)
		}
		t, ok := config.ParsePropertyType(args[3])
		if !ok {
			logger.Fatal("unknown property type",
				zap.String("op", "main"),
				zap.String("type", args[3]),
			)
		}
		removed, err := store.DeleteSample(args[1], args[2], t)
		if err != nil {
			logger.Fatal("failed to delete sample",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if !removed {
			logger.Warn("no matching sample",
				zap.String("op", "main"),
				zap.String("city", args[1]),
				zap.String("district", args[2]),
				zap.String("type", string(t)),
			)
		}
	case "count":
		n, err := store.CountSamples()
		if err != nil {
			logger.Fatal("failed to count samples",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Println(n)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// importSamples records every sample of the CSV file, refusing the whole file
// when a row names a city or district the catalog does not know.
func importSamples(logger *zap.Logger, store *storage.SQLiteStore, catalog reference.Catalog, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	samples, err := storage.ReadSamplesCSV(file)
	if err != nil {
		return err
	}
	for i, s := range samples {
		city, err := catalog.City(s.City)
		if err != nil {
			return err
		}
		district, ok := districtName(city, s.District)
		if !ok {
			return fmt.Errorf("district %q is not part of %s", s.District, city.Name)
		}
		// Stored under the English names the catalog matches on.
		samples[i].City, samples[i].District = city.Name, district
	}
	if err := store.UpsertSamples(samples); err != nil {
		return err
	}

	logger.Info("price samples imported",
		zap.String("op", "main.importSamples"),
		zap.Int("count", len(samples)),
	)
	return nil
}

func districtName(city reference.City, name string) (string, bool) {
	for _, d := range city.Districts {
		if strings.EqualFold(d.Name, name) || (d.ArabicName != "" && d.ArabicName == name) {
			return d.Name, true
		}
	}
	return "", false
}
