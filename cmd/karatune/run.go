package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"karolbroda.com/karatune/internal/config"
	"karolbroda.com/karatune/internal/song"
	"karolbroda.com/karatune/internal/terminal"
	"karolbroda.com/karatune/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "start the interactive karaoke viewer",
	Long:  `starts the terminal karaoke viewer with the configured song.`,
	RunE:  runViewer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runViewer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		cancel()
		terminal.Reset()
		os.Exit(0)
	}()

	defer terminal.Reset()

	// load config from environment, then override with flags
	cfg := config.Load()

	if songPath != "" {
		cfg.SongPath = songPath
	}
	if cmd.Flags().Changed("sync-offset") {
		cfg.SyncOffset = syncOffset
	}
	if cmd.Flags().Changed("tick-ms") && tickMs > 0 {
		cfg.TickInterval = time.Duration(tickMs) * time.Millisecond
	}

	songCfg, err := loadSong(cfg.SongPath)
	if err != nil {
		return err
	}

	model := ui.NewModel(ui.ModelConfig{
		Song:         songCfg,
		SyncOffset:   cfg.SyncOffset,
		TickInterval: cfg.TickInterval,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running bubble tea: %w", err)
	}

	return nil
}

func loadSong(path string) (*song.Config, error) {
	if path == "" {
		cfg := song.Default()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("built-in song is invalid: %w", err)
		}
		return cfg, nil
	}
	return song.LoadFile(path)
}
