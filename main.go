package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"healthgrid/internal/config"
	"healthgrid/internal/datasets"
	"healthgrid/internal/discovery"
	"healthgrid/internal/eventbus"
	"healthgrid/internal/logic"
	"healthgrid/internal/ui"
	"healthgrid/internal/ui/services/announce"
	"healthgrid/internal/ui/state"
	"healthgrid/internal/ui/views"
)

func main() {
	// Parse command line arguments
	var (
		targetDir  string
		configPath string
		logPath    string
		pageSize   int
		printMode  bool
		initConfig bool
	)
	flag.StringVar(&targetDir, "dir", "", "Directory to load datasets from")
	flag.StringVar(&targetDir, "d", "", "Directory to load datasets from (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to a config file (default <dir>/"+config.FileName+")")
	flag.StringVar(&logPath, "log", "healthgrid.log", "Log file")
	flag.IntVar(&pageSize, "page-size", 0, "Rows per page, overriding the config")
	flag.BoolVar(&printMode, "print", false, "Print the first page of every dataset and exit")
	flag.BoolVar(&initConfig, "init", false, "Write the loaded datasets to "+config.FileName+" when it does not exist")
	flag.Parse()

	// If no directory specified, check for remaining args
	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}
	dirGiven := targetDir != ""

	// If still no directory, use current directory
	if targetDir == "" {
		var err error
		targetDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting current directory: %v\n", err)
			os.Exit(1)
		}
	}

	// Resolve to absolute path
	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(absDir, bus)
	cfg, err := loadConfig(configSvc, configPath, absDir, dirGiven)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if pageSize > 0 {
		cfg.UISettings.PageSize = pageSize
	}

	// Load datasets from config, discovery or the built-in sample
	store := logic.NewMemoryDatasetStore()
	loader := logic.NewLoader(store, discovery.NewDiscoveryService(bus), bus)

	writeInit := func() {
		if initConfig && configPath == "" {
			writeConfig(configSvc, absDir, cfg, store)
		}
	}

	if printMode || !isatty.IsTerminal(os.Stdout.Fd()) {
		failures, err := loader.Load(ctx, cfg)
		if err != nil {
			log.Printf("Error loading datasets: %v", err)
			fmt.Fprintf(os.Stderr, "Error loading datasets: %v\n", err)
			os.Exit(1)
		}
		tabs, err := buildTabs(store, cfg, bus, true)
		if err != nil {
			log.Printf("Error building grids: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		writeInit()
		printTabs(os.Stdout, tabs)
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", f.Path, f.Err)
		}
		return
	}

	// Create UI model; tabs arrive while datasets load
	uiModel := ui.NewModel(cfg, nil)
	uiModel.SetLoading(true)

	// Create Bubble Tea program
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Forward UI-relevant events to the program
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventRowActivated,
		eventbus.EventSelectionChanged,
		eventbus.EventError,
		eventbus.EventConfigSaved,
		eventbus.EventScanStarted,
		eventbus.EventScanCompleted,
	} {
		bus.Subscribe(t, forward)
	}

	// Query changes and loaded datasets are only logged
	logEvent := func(e eventbus.DomainEvent) {
		log.Printf("%s: %+v", e.Type(), e)
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSortChanged,
		eventbus.EventFilterChanged,
		eventbus.EventSearchChanged,
		eventbus.EventDatasetLoaded,
	} {
		bus.Subscribe(t, logEvent)
	}

	// Hand each grid to the UI as soon as its dataset is parsed
	var buildErr error
	loader.OnLoaded(func(ld *logic.LoadedDataset) {
		tab, err := buildTab(ld, cfg, bus, false)
		if err != nil {
			log.Printf("Error building grid for %s: %v", ld.Dataset.Name, err)
			buildErr = err
			return
		}
		p.Send(ui.TabAddedMsg{Tab: tab})
	})

	go func() {
		failures, err := loader.Load(ctx, cfg)
		if err == nil {
			err = buildErr
		}
		if err != nil {
			log.Printf("Error loading datasets: %v", err)
		} else {
			writeInit()
		}
		log.Printf("Loaded %d dataset(s), %d failure(s)", store.Len(), len(failures))
		p.Send(ui.LoadFinishedMsg{Failed: len(failures), Err: err})
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadConfig reads the explicit config path, or <dir>/.healthgrid.toml with
// defaults when it is missing. With an explicit config path, a directory given
// on the command line overrides its data_dir.
func loadConfig(svc config.ConfigService, path, dir string, dirGiven bool) (*config.Config, error) {
	if path == "" {
		return svc.Load()
	}

	cfg, err := svc.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	if dirGiven || cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	log.Printf("Loaded config from %s", path)
	return cfg, nil
}

// writeConfig saves the loaded datasets as the directory's config, leaving an
// existing file alone
func writeConfig(svc config.ConfigService, dir string, cfg *config.Config, store logic.DatasetStore) {
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		log.Printf("Config %s exists, not overwriting", path)
		return
	}

	out := *cfg
	out.Datasets = nil
	for _, ld := range store.GetAllDatasets() {
		// The built-in sample has no file behind it
		if ld.Dataset.Path == "" {
			continue
		}
		rel, err := filepath.Rel(cfg.DataDir, ld.Dataset.Path)
		if err != nil {
			rel = ld.Dataset.Path
		}
		out.Datasets = append(out.Datasets, config.DatasetConfig{
			Name: ld.Dataset.Name,
			Kind: string(ld.Dataset.Kind),
			Path: rel,
		})
	}

	if err := svc.Save(&out); err != nil {
		log.Printf("Failed to save config: %v", err)
		return
	}
	log.Printf("Config saved to %s", path)
}

// buildTabs creates one grid per loaded dataset
func buildTabs(store logic.DatasetStore, cfg *config.Config, bus eventbus.EventBus, plain bool) ([]state.Tab, error) {
	var tabs []state.Tab
	for _, ld := range store.GetAllDatasets() {
		tab, err := buildTab(ld, cfg, bus, plain)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	return tabs, nil
}

// buildTab creates the grid of one dataset. Plain output has nobody to
// announce to.
func buildTab(ld *logic.LoadedDataset, cfg *config.Config, bus eventbus.EventBus, plain bool) (state.Tab, error) {
	var announcer announce.Announcer = announce.Nop{}
	if !plain {
		announcer = announce.NewQueue(announce.WithDelay(cfg.UISettings.AnnounceDelay.Duration))
	}

	g, err := datasets.NewGrid(ld.Dataset, ld.Bundle, datasets.Options{
		PageSize:     cfg.UISettings.PageSize,
		Selectable:   cfg.UISettings.Selectable,
		Searchable:   cfg.UISettings.Searchable,
		EmptyMessage: cfg.UISettings.EmptyMessage,
		Announcer:    announcer,
		Bus:          bus,
	})
	if err != nil {
		return state.Tab{}, err
	}
	return state.Tab{Name: ld.Dataset.Name, Grid: g}, nil
}

// printTabs writes the first page of every dataset without colors
func printTabs(w io.Writer, tabs []state.Tab) {
	for i, t := range tabs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, views.RenderPlain(t.Name, t.Grid.View()))
		t.Grid.Close()
	}
}
