package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"paralela/internal/app"
	"paralela/internal/config"
	"paralela/internal/location"
)

var (
	flagDemo     bool
	flagNoCamera bool
	flagLang     string
	flagLog      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paralela",
		Short: "Paralela - an interdimensional story narrated through your terminal",
		Long: `Paralela tells a story from a parallel dimension, woven from wherever
and whenever you are reading it. The narrator borrows your location, your
local time and your device sensors to address you directly.

Everything works without sensors: denied or missing inputs fall back to a
simulated parallel world. Use --demo to force simulated drivers everywhere.`,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run with simulated sensors (no hardware required)")
	rootCmd.Flags().BoolVar(&flagNoCamera, "no-camera", false, "Disable camera acquisition entirely")
	rootCmd.Flags().StringVar(&flagLang, "lang", "", "Locale for time formatting (default from PARALELA_LANG)")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Write debug logs to this file (default from PARALELA_LOG)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	env, err := config.FromEnv()
	if err != nil {
		return err
	}
	if flagLang != "" {
		env.Locale = flagLang
	}
	if flagLog != "" {
		env.LogPath = flagLog
	}

	log, err := buildLogger(env.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
		log = zap.NewNop()
	}
	defer log.Sync()

	tag, err := language.Parse(env.Locale)
	if err != nil {
		tag = language.Spanish
	}

	var provider location.Provider
	switch {
	case env.HasCoordinates():
		provider = location.StaticProvider{Coords: location.Coordinates{
			Lat: env.Latitude,
			Lon: env.Longitude,
		}}
	case flagDemo:
		// Demo mode never leaves the simulated world.
	default:
		provider = location.NewHTTPProvider(env.GeolocateURL, config.LocationMaxAge)
	}

	model := app.New(app.Options{
		Demo:     flagDemo,
		NoCamera: flagNoCamera,
		Lang:     tag,
		Env:      env,
		Provider: provider,
		Log:      log,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(config.TargetFPS),
	)

	// Hand the program to the drivers before the event loop starts
	model.StartSensors(p)

	_, err = p.Run()
	return err
}

// buildLogger writes structured logs to a file so they never corrupt the
// alternate screen. Without a path, logging is off.
func buildLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
