// ABOUTME: Combine command for merging containers without re-encoding
// ABOUTME: Splices the chapters of several input files into one container

package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/BdN3504/teddy-sub000/pkg/tonie"
	"github.com/spf13/cobra"
)

// combineCmd represents the combine command
var combineCmd = &cobra.Command{
	Use:   "combine <file>...",
	Short: "Merge containers and audio files into one container",
	Long: `Merge Tonie containers and audio files into a single container. The
chapters of each container are spliced in without re-encoding; audio
files (mp3, flac, wav, ogg/opus) are encoded as new chapters. Order is
preserved: all chapters of the first input, then the second, and so on.

Example:
  teddy combine -o merged.taf part1.taf bonus-track.mp3 part2.taf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		audioID, _ := cmd.Flags().GetUint32("audio-id")

		var tracks []tonie.TrackSource
		for _, path := range args {
			switch strings.ToLower(filepath.Ext(path)) {
			case ".mp3", ".flac", ".wav", ".ogg", ".opus":
				tracks = append(tracks, tonie.FileTrack(path))
				continue
			}
			c, err := tonie.ReadFile(path, true)
			if err != nil {
				return err
			}
			if !c.HashValid {
				log.Printf("warning: %s: audio hash does not match the header", path)
			}
			chapters, err := tonie.ExtractChapters(c.Header, c.Audio)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			for _, chapter := range chapters {
				tracks = append(tracks, tonie.RawTrack(chapter))
			}
		}

		out, err := tonie.Encode(tracks, tonie.EncodeOptions{AudioID: audioID, VBR: true}, nil)
		if err != nil {
			return err
		}
		if err := out.WriteFile(output); err != nil {
			return err
		}

		log.Printf("wrote %s: id 0x%08X, %d chapters", output, out.Header.AudioID, len(out.Header.Chapters))
		fmt.Printf("%s: %d chapters, audio id 0x%08X\n", output, len(out.Header.Chapters), out.Header.AudioID)
		return nil
	},
}

func init() {
	combineCmd.Flags().StringP("output", "o", "", "Output file path (required)")
	_ = combineCmd.MarkFlagRequired("output")
	combineCmd.Flags().Uint32("audio-id", 0, "Audio id (default: derived from the current time)")
	rootCmd.AddCommand(combineCmd)
}
