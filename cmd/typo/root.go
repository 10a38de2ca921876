package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ezrec/typo/batch"
	"github.com/ezrec/typo/config"
	"github.com/ezrec/typo/logs"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	viper  *viper.Viper
	config config.Config
	logger *slog.Logger

	cleanup []func() error
}

// newRootCmd builds the command tree around a fresh viper instance.
func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:               "typo",
		Short:             "Translate and run Typogenetics strands",
		Version:           "0.1.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("settings", "s", "", "settings file (yaml, toml or json)")
	flags.BoolP("verbose", "v", false, "log batch ticks and overflow")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-file", "", "also log JSON records to this file")
	flags.Int("workers", 0, "concurrent lane ranges, 0 for one per CPU")
	flags.Int("floor", batch.DEFAULT_FLOOR, "minimum batch strand capacity")
	flags.Int("ceiling", batch.DEFAULT_CEILING, "maximum batch strand capacity")
	flags.Int("fragments", 0, "fragment slots per lane, 0 for the longest program")
	flags.String("metrics-addr", "", "serve prometheus /metrics on this address")

	for key, flag := range map[string]string{
		"settings":        "settings",
		"verbose":         "verbose",
		"log.level":       "log-level",
		"log.file":        "log-file",
		"batch.workers":   "workers",
		"batch.floor":     "floor",
		"batch.ceiling":   "ceiling",
		"batch.fragments": "fragments",
		"metrics.addr":    "metrics-addr",
	} {
		_ = a.viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newTranslateCmd(a),
		newRunCmd(a),
		newProductsCmd(a),
		newBatchCmd(a),
		newVerifyCmd(a),
		newScriptCmd(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) (err error) {
	a.config, err = config.Load(a.viper)
	if err != nil {
		return
	}

	logger, closeLog, err := logs.New(cmd.ErrOrStderr(), a.config.Log)
	if err != nil {
		return
	}
	a.logger = logger
	a.cleanup = append(a.cleanup, closeLog)

	return
}

func (a *app) teardown() (err error) {
	for n := len(a.cleanup) - 1; n >= 0; n-- {
		if cerr := a.cleanup[n](); cerr != nil && err == nil {
			err = cerr
		}
	}
	a.cleanup = nil
	return
}

// metrics returns batch counters served over HTTP, or nil when no metrics
// address is configured.
func (a *app) metrics() (m *batch.Metrics, err error) {
	addr := a.config.Metrics.Addr
	if len(addr) == 0 {
		return
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return
	}

	reg := prometheus.NewRegistry()
	m = batch.NewMetrics(reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux}

	go func() {
		serr := srv.Serve(ln)
		if serr != nil && serr != http.ErrServerClosed {
			a.logger.Error("metrics server", "error", serr)
		}
	}()

	a.logger.Info("serving metrics", "addr", ln.Addr().String())
	a.cleanup = append(a.cleanup, func() error {
		return srv.Shutdown(context.Background())
	})

	return
}

// batchConfig returns the batch sizing and worker count.
func (a *app) batchConfig() (cfg batch.Config, workers int) {
	cfg = a.config.Batch.Config
	workers = a.config.Batch.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return
}
