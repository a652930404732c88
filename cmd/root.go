// Package cmd provides the root command and CLI setup for fretwise.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mouse-blink/fretwise/internal/adapter"
	"github.com/mouse-blink/fretwise/internal/controller"
	"github.com/mouse-blink/fretwise/internal/domain"
	m "github.com/mouse-blink/fretwise/internal/model"
	"github.com/spf13/cobra"
)

var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var store adapter.LayoutStore
var ui controller.UI
var workflow domain.Workflow

var debugFlag bool
var layoutsFlag []string
var parallelFlag int

func init() {
	logger = newLogger(logLevel)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))

	var err error

	store, err = adapter.NewLayoutStore()
	cobra.CheckErr(err)

	workflow = newWorkflow(1)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fretwise",
		Short: "Chord fingering finder for fretted instruments",
		Long: `Fretwise builds scales and chords and lists every way to finger a chord
on a fretted instrument such as a banjo, guitar, ukulele or mandolin.

A fingering assigns each string a state: muted (x), open (0) or a fret.
Fingerings are kept when every played string sounds a chord tone and the
fretted positions fit within one hand span.`,
		SilenceUsage:      true,
		PersistentPreRunE: configure,
	}
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringArrayVar(&layoutsFlag, "layouts", nil, "YAML file with extra instrument layouts (can be repeated)")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for fingering search")

	cmd.AddCommand(newScaleCmd(), newChordCmd(), newFindCmd(), newListCmd(), newServeCmd())

	return cmd
}

// configure applies the persistent flags. The default workflow is only
// replaced when a flag changes what it is built from.
func configure(_ *cobra.Command, _ []string) error {
	logLevel.Set(levelFor(debugFlag))
	slog.SetDefault(logger)

	if len(layoutsFlag) == 0 && parallelFlag == 1 {
		return nil
	}

	if len(layoutsFlag) > 0 {
		paths := make([]m.Path, 0, len(layoutsFlag))
		for _, p := range layoutsFlag {
			paths = append(paths, m.Path(p))
		}

		s, err := adapter.NewLayoutStore(paths...)
		if err != nil {
			return err
		}

		store = s
	}

	workflow = newWorkflow(parallelFlag)

	return nil
}

func newWorkflow(threads int) domain.Workflow {
	return domain.NewWorkflow(
		store,
		adapter.NewMIDIExporter(),
		ui,
		domain.NewFinder(threads, logger),
		logger,
	)
}

func newLogger(level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func levelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
