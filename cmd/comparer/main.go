package main

import (
	// Go Internal Packages
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	// Local Packages
	config "tx-codec/config"
	formats "tx-codec/formats"
	compare "tx-codec/services/compare"

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
	file1Path   = kingpin.Flag("file1", "Path to the first file").Required().String()
	file1Format = kingpin.Flag("file1-format", "Format of the first file").Required().Enum(formats.Names...)
	file2Path   = kingpin.Flag("file2", "Path to the second file").Required().String()
	file2Format = kingpin.Flag("file2-format", "Format of the second file").Short('f').Required().Enum(formats.Names...)
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

// openInput parses the format name and opens the file at path.
func openInput(logger *zap.Logger, path, format string) (*os.File, formats.Format) {
	f, err := formats.ParseFormat(format)
	if err != nil {
		logger.Fatal("cannot parse file format", zap.String("path", path), zap.Error(err))
	}
	in, err := os.Open(path)
	if err != nil {
		logger.Fatal("cannot open file", zap.String("path", path), zap.Error(err))
	}
	return in, f
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

	// Stdout carries the verdict, so logs go to stderr
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

	firstFile, firstFormat := openInput(logger, *file1Path, *file1Format)
	defer func() {
		_ = firstFile.Close()
	}()
	secondFile, secondFormat := openInput(logger, *file2Path, *file2Format)
	defer func() {
		_ = secondFile.Close()
	}()

	first, err := formats.NewReader(firstFile, firstFormat)
	if err != nil {
		logger.Fatal("cannot create reader for file1", zap.Error(err))
	}
	second, err := formats.NewReader(secondFile, secondFormat)
	if err != nil {
		logger.Fatal("cannot create reader for file2", zap.Error(err))
	}

	comparer := compare.NewComparer(logger, first, second)
	result, err := comparer.Run(ctx)
	if err != nil {
		logger.Fatal("comparison aborted", zap.Error(err))
	}

	if result.Identical {
		logger.Info("comparison finished", zap.Uint64("records", result.Records))
		fmt.Println("Data in files are identical")
		return
	}
	logger.Info("comparison finished",
		zap.Uint64("records", result.Records),
		zap.String("reason", result.Reason))
	fmt.Println("Data in files are not identical")
}
