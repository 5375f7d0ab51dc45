// Command eventcoredemo wires an appevents producer and a windowevents
// stub platform through two observer buses pumped on a fixed tick, and
// prints what each listener observes. It exists to demonstrate
// end-to-end registration/dispatch/communicate/process wiring, not as a
// real application.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	eventcore "github.com/RRRella/solarc-eventcore"
	"github.com/RRRella/solarc-eventcore/modules/appevents"
	"github.com/RRRella/solarc-eventcore/modules/runtime"
	"github.com/RRRella/solarc-eventcore/modules/windowevents"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eventcoredemo",
		Short: "Demonstrates the eventcore producer/listener/bus wiring",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var tick time.Duration
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Wires demo buses, dispatches a sequence, prints what listeners observe",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), tick, configPath)
		},
	}
	cmd.Flags().DurationVar(&tick, "tick", 10*time.Millisecond, "pump interval")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML or TOML eventcore config file")
	return cmd
}

// loadDemoConfig loads cfg from configPath when given, otherwise returns
// the zero Config filled in by Setup's defaults.
func loadDemoConfig(configPath string) (eventcore.Config, error) {
	if configPath == "" {
		var cfg eventcore.Config
		if err := cfg.Setup(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return eventcore.LoadConfig(configPath)
}

func runDemo(ctx context.Context, tick time.Duration, configPath string) error {
	cfg, err := loadDemoConfig(configPath)
	if err != nil {
		return err
	}

	level, err := eventcore.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := eventcore.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	appBus := eventcore.NewObserverBus[appevents.Event](log, cfg.Strict)
	winBus := eventcore.NewObserverBus[windowevents.Event](log, cfg.Strict)

	pump := runtime.NewPump(tick, log)
	pump.Register(appBus)
	pump.Register(winBus)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	pump.Start(runCtx)
	defer pump.Stop()

	appProducer := appevents.NewProducer(log)
	if err := appBus.RegisterProducer(appProducer.EventProducer); err != nil {
		return err
	}
	appListener := eventcore.NewEventListener[appevents.Event](log, func(e appevents.Event) {
		fmt.Printf("[app] %s\n", e.Type)
	})
	if err := appBus.RegisterListener(appListener); err != nil {
		return err
	}

	platform := windowevents.NewStubWindowPlatform(log, windowevents.Handle(1))
	if err := winBus.RegisterProducer(platform.Producer().EventProducer); err != nil {
		return err
	}
	winListener := eventcore.NewEventListener[windowevents.Event](log, func(e windowevents.Event) {
		fmt.Printf("[window] %v handle=%d\n", e.Type, e.Handle)
	})
	if err := winBus.RegisterListener(winListener); err != nil {
		return err
	}

	platform.Show()
	appProducer.DispatchInitializeComplete()
	appProducer.DispatchStagingComplete("/demo/project")
	appProducer.DispatchLoadingComplete()
	appProducer.DispatchRunningComplete(appevents.Shutdown)
	platform.RequestClose()
	appProducer.DispatchCleanupComplete()

	pump.Kick()
	time.Sleep(3 * tick)

	appListener.ProcessEvents()
	winListener.ProcessEvents()

	appProducer.Close()
	platform.Producer().Close()
	appListener.Close()
	winListener.Close()

	return nil
}
