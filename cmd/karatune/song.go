package main

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"karolbroda.com/karatune/internal/render"
)

var songCmd = &cobra.Command{
	Use:   "song",
	Short: "song file inspection",
	Long:  `inspect and validate song files before playing them.`,
}

var songInfoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "show a song file's metadata and timed lines",
	Long:  `loads and validates a song file (.json or .lrc) and prints its metadata and lyric timeline.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSong(args[0])
		if err != nil {
			return err
		}

		banner := figure.NewFigure(cfg.Title, "", false)
		banner.Print()

		fmt.Printf("\n  duration:  %s\n", render.FormatTime(cfg.Duration))
		if cfg.StartPosition > 0 {
			fmt.Printf("  starts at: %s\n", render.FormatTime(cfg.StartPosition))
		}
		fmt.Printf("  lines:     %d\n\n", len(cfg.Lyrics))

		for _, line := range cfg.Lyrics {
			fmt.Printf("  [%s - %s]  %s\n",
				render.FormatTime(line.Start),
				render.FormatTime(line.End),
				line.Text)
		}

		return nil
	},
}

func init() {
	songCmd.AddCommand(songInfoCmd)
	rootCmd.AddCommand(songCmd)
}
