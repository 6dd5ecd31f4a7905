package main

import (
	// Go Internal Packages
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	// Local Packages
	config "tx-codec/config"
	formats "tx-codec/formats"
	helpers "tx-codec/helpers"
	inspect "tx-codec/services/inspect"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

var (
	inputPath   = kingpin.Flag("input", "Path to the input file").Short('i').Required().String()
	inputFormat = kingpin.Flag("input-format", "Format of the input file").Required().Enum(formats.Names...)
	jsonOutput  = kingpin.Flag("json", "Print the stats as JSON instead of a table").Bool()
)

// LoadConfig loads the default configuration and overrides it with the config file
// specified by the path defined in the config flag
func LoadConfig() *koanf.Koanf {
	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("config.yml").String()

	kingpin.Parse()
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}
	return k
}

func main() {
	k := LoadConfig()
	appKonf := config.Config{}

	// Unmarshalling config into struct
	err := k.Unmarshal("", &appKonf)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Validate the config loaded
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Stdout carries the report, so logs go to stderr
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(k.String("logger.level")))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = appKonf.Application
	cfg.InitialFields["run_id"] = uuid.NewString()
	cfg.OutputPaths = []string{"stderr"}
	logger, _ := cfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inFormat, err := formats.ParseFormat(*inputFormat)
	if err != nil {
		logger.Fatal("cannot parse input format", zap.Error(err))
	}

	input, err := os.Open(*inputPath)
	if err != nil {
		logger.Fatal("cannot open input file", zap.Error(err))
	}
	defer func() {
		_ = input.Close()
	}()

	reader, err := formats.NewReader(input, inFormat)
	if err != nil {
		logger.Fatal("cannot create reader for input", zap.Error(err))
	}

	inspector := inspect.NewInspector(logger, reader)
	stats, err := inspector.Run(ctx)
	if err != nil {
		logger.Fatal("inspection aborted", zap.Error(err))
	}
	logger.Info("inspection finished",
		zap.Uint64("records", stats.Records),
		zap.Uint64("malformed", stats.Malformed))

	if *jsonOutput {
		helpers.FprintStruct(os.Stdout, stats)
		return
	}
	renderTable(stats)
}

// renderTable prints the stats as a two-column table on stdout.
func renderTable(stats inspect.Stats) {
	count := func(n uint64) string { return strconv.FormatUint(n, 10) }

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Records", count(stats.Records)})
	table.Append([]string{"Malformed", count(stats.Malformed)})
	table.Append([]string{"Deposits", count(stats.Deposits)})
	table.Append([]string{"Transfers", count(stats.Transfers)})
	table.Append([]string{"Withdrawals", count(stats.Withdrawals)})
	table.Append([]string{"Success", count(stats.Success)})
	table.Append([]string{"Failure", count(stats.Failure)})
	table.Append([]string{"Pending", count(stats.Pending)})
	table.Append([]string{"Total amount", stats.TotalAmount.String()})
	table.Append([]string{"Min timestamp", count(stats.MinTimestamp)})
	table.Append([]string{"Max timestamp", count(stats.MaxTimestamp)})
	table.Render()
}
