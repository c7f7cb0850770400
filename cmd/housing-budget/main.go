package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/housing-budget/internal/config"
	"github.com/iwvelando/housing-budget/internal/planner"
	"github.com/iwvelando/housing-budget/pkg/constants"
	"github.com/iwvelando/housing-budget/pkg/format"
	"github.com/iwvelando/housing-budget/pkg/output"
	"github.com/iwvelando/housing-budget/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	lang := flag.String("lang", "en", "number formatting for pretty output: en, ar")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	var formatter *format.Formatter
	switch *lang {
	case "en":
		formatter = format.English
	case "ar":
		formatter = format.Arabic
	default:
		logger.Fatal("unsupported language",
			zap.String("op", "main"),
			zap.String("lang", *lang),
		)
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	catalog, err := conf.LoadCatalog()
	if err != nil {
		logger.Fatal("failed to load reference catalog",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	if err := catalog.Validate(); err != nil {
		logger.Fatal("invalid reference catalog",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	var results []planner.Result
	for _, household := range conf.ActiveHouseholds() {
		profile, err := household.Profile()
		if err != nil {
			logger.Error("skipping household",
				zap.String("op", "main"),
				zap.String("household", household.Name),
				zap.Error(err),
			)
			continue
		}

		result, err := planner.Plan(logger, catalog, profile)
		if err != nil {
			logger.Error("failed to plan household",
				zap.String("op", "main"),
				zap.String("household", household.Name),
				zap.Error(err),
			)
			continue
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		logger.Fatal("no household could be planned",
			zap.String("op", "main"),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		if err := output.WritePretty(os.Stdout, results, formatter); err != nil {
			logger.Fatal("failed to write output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	case constants.OutputFormatJSON:
		output.JSONFormat(results)
	}
}
