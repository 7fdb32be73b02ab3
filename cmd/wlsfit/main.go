// Command wlsfit fits a weighted least squares line to samples read from a yaml file
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	wls "github.com/aouyang1/go-wls"
	"github.com/aouyang1/go-wls/linearmodel"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

var errNoInput = errors.New("no input file provided")

type config struct {
	input      string
	plot       string
	minSamples int
	json       bool
	logLevel   string
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("wlsfit", flag.ContinueOnError)
	fs.StringVar(&cfg.input, "input", "", "yaml file with x, y and optional weights")
	fs.StringVar(&cfg.plot, "plot", "", "write an html chart of the fit to this path")
	fs.IntVar(&cfg.minSamples, "min-samples", linearmodel.DefaultMinSamples, "fewest samples accepted")
	fs.BoolVar(&cfg.json, "json", false, "print results as json")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.input == "" {
		return nil, errNoInput
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func loadSamples(path string) (wls.Samples, error) {
	var s wls.Samples

	file, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&s); err != nil {
		return s, fmt.Errorf("unable to decode samples from %s, %w", path, err)
	}
	return s, nil
}

func run(cfg *config, w io.Writer, logger *zap.Logger) error {
	s, err := loadSamples(cfg.input)
	if err != nil {
		return err
	}
	logger.Debug("loaded samples",
		zap.String("input", cfg.input),
		zap.Int("samples", len(s.X)),
		zap.Bool("weighted", s.Weights != nil),
	)

	res, err := wls.FitSamples(s, &linearmodel.WLSOptions{MinSamples: cfg.minSamples})
	if err != nil {
		return fmt.Errorf("unable to fit samples, %w", err)
	}
	if !res.Fitted {
		logger.Warn("no unique line fits the samples", zap.Int("samples", res.Samples))
	}

	switch {
	case cfg.json:
		if err := res.WriteJSON(w); err != nil {
			return err
		}
	case res.Fitted:
		if _, err := fmt.Fprintf(w, "Slope: %v\nIntercept: %v\n", res.Slope, res.Intercept); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprintln(w, "no fit"); err != nil {
			return err
		}
	}

	if cfg.plot == "" || !res.Fitted {
		return nil
	}
	file, err := os.Create(cfg.plot)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := wls.PlotFit(file, s, res); err != nil {
		return fmt.Errorf("unable to plot fit, %w", err)
	}
	logger.Info("wrote plot", zap.String("path", cfg.plot))
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("wlsfit failed", zap.Error(err))
		os.Exit(1)
	}
}
