package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/converters"
	"github.com/katalvlaran/socialgraph/logging"
)

// app carries state resolved once in PersistentPreRunE.
type app struct {
	configPath string
	dataPath   string
	dataFormat string
	logLevel   string
	asJSON     bool

	cfg *config.Config
	log *logging.Logger
	svc *analysis.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "socialgraph",
		Short:         "Analyse a weighted social network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&a.dataPath, "data", "d", "", "dataset file (overrides data.path)")
	pf.StringVar(&a.dataFormat, "format", "", "dataset format: auto, csv or json (overrides data.format)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	pf.BoolVar(&a.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		newBFSCmd(a),
		newDFSCmd(a),
		newPathCmd(a),
		newCentralityCmd(a),
		newBetweennessCmd(a),
		newColorCmd(a),
		newComponentsCmd(a),
		newBackboneCmd(a),
		newStatsCmd(a),
		newGenerateCmd(a),
		newConvertCmd(a),
		newReportCmd(a),
		newServeCmd(a),
	)

	return root
}

// init resolves configuration, logger and service, then loads the dataset
// when one is configured.
func (a *app) init(ctx context.Context) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dataPath != "" {
		cfg.Data.Path = a.dataPath
	}
	if a.dataFormat != "" {
		cfg.Data.Format = a.dataFormat
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(cfg.Log, zap.String("app", "socialgraph"))
	if err != nil {
		return err
	}
	a.svc = analysis.New(
		analysis.WithLogger(a.log.Named("analysis")),
		analysis.WithConfig(cfg),
	)
	if cfg.Data.Path == "" {
		return nil
	}
	format, err := converters.ParseFormat(cfg.Data.Format)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = a.svc.Load(ctx, cfg.Data.Path, format)

	return err
}

func (a *app) format() converters.Format {
	f, err := converters.ParseFormat(a.cfg.Data.Format)
	if err != nil {
		return converters.FormatAuto
	}

	return f
}

// emit prints v as JSON with --json, otherwise calls text.
func (a *app) emit(w io.Writer, v any, text func(io.Writer)) error {
	if a.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)

	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid node id %q", s)
	}

	return id, nil
}
