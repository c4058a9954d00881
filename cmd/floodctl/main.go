package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"floodwatch/internal/config"
	"floodwatch/internal/logger"
	"floodwatch/internal/term"

	"github.com/spf13/cobra"
)

// errReported marks a failure whose alert is already on screen.
var errReported = errors.New("request failed")

type app struct {
	configFile string
	verbose    bool
	predictURL string
	askURL     string
	style      string
	width      int

	cfg *config.Config
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:   "floodctl",
		Short: "Flood risk predictions and farm answers from the terminal",
		Long: `floodctl sends one request to the flood prediction service or the farm
assistant and prints the result. It never retries; a failed request is reported
and the command exits non-zero.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.cfg = config.Load(a.configFile)
			if a.predictURL != "" {
				a.cfg.Predictor.URL = a.predictURL
			}
			if a.askURL != "" {
				a.cfg.Assistant.URL = a.askURL
			}
			level := "warn"
			if a.verbose {
				level = "debug"
			}
			slog.SetDefault(logger.New(config.LogConfig{Level: level, Console: true}, os.Stderr))
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")
	pf.StringVar(&a.predictURL, "predict-url", "", "override the prediction endpoint")
	pf.StringVar(&a.askURL, "ask-url", "", "override the assistant endpoint")
	pf.StringVar(&a.style, "style", "", "glamour style for answers (dark, light, notty); auto when empty")
	pf.IntVar(&a.width, "width", 80, "wrap width")

	root.AddCommand(a.predictCmd(), a.askCmd())
	return root
}

func (a *app) renderer() *term.Renderer { return term.New(a.out, a.width, a.style) }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
