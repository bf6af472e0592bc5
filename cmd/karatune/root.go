package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// global flags
	songPath   string
	syncOffset float64
	tickMs     int
)

var rootCmd = &cobra.Command{
	Use:   "karatune",
	Short: "terminal karaoke lyric display",
	Long: `karatune is a terminal-based karaoke display: it plays a song clock against
timed lyrics and renders a scrolling window with sung/unsung highlighting
and a progress bar.

when run without a subcommand, it starts the interactive viewer with the
built-in demo song, or the song given via --song.`,
	Version: "1.0.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		// default behavior: run the viewer
		return runViewer(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&songPath, "song", "f", "", "song file to play (.json or .lrc)")
	rootCmd.PersistentFlags().Float64VarP(&syncOffset, "sync-offset", "s", 0, "initial lyric sync offset in seconds (>= 0)")
	rootCmd.PersistentFlags().IntVar(&tickMs, "tick-ms", 0, "redraw interval in milliseconds (default 16)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
