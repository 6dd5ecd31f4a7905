package main

import (
	// Go Internal Packages
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	// Local Packages
	config "tx-codec/config"
	formats "tx-codec/formats"
	convert "tx-codec/services/convert"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"go.uber.org/zap"
)

var (
	inputPath    = kingpin.Flag("input", "Path to the input file").Short('i').Required().String()
	inputFormat  = kingpin.Flag("input-format", "Format of the input file").Required().Enum(formats.Names...)
	outputFormat = kingpin.Flag("output-format", "Format written to stdout").Short('o').Required().Enum(formats.Names...)
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

	// Stdout carries the converted records, so logs go to stderr
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
	outFormat, err := formats.ParseFormat(*outputFormat)
	if err != nil {
		logger.Fatal("cannot parse output format", zap.Error(err))
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
	serializer, err := formats.NewSerializer(outFormat)
	if err != nil {
		logger.Fatal("cannot create serializer", zap.Error(err))
	}

	output := bufio.NewWriter(os.Stdout)
	writer, err := formats.NewWriter(output, outFormat)
	if err != nil {
		logger.Fatal("cannot create writer for stdout", zap.Error(err))
	}

	policy, err := convert.ParsePolicy(appKonf.Convert.OnRecordError)
	if err != nil {
		logger.Fatal("cannot parse record error policy", zap.Error(err))
	}

	converter := convert.NewConverter(logger, reader, serializer, writer, policy)
	summary, err := converter.Run(ctx)
	if flushErr := output.Flush(); flushErr != nil {
		logger.Error("cannot flush output", zap.Error(flushErr))
	}
	if err != nil {
		logger.Fatal("conversion aborted", zap.Error(err),
			zap.Uint64("produced", summary.Produced),
			zap.Uint64("written", summary.Written),
			zap.Uint64("failed", summary.Failed))
	}
	logger.Info("conversion finished",
		zap.String("input_format", inFormat.String()),
		zap.String("output_format", outFormat.String()),
		zap.Uint64("produced", summary.Produced),
		zap.Uint64("written", summary.Written),
		zap.Uint64("failed", summary.Failed))
}
