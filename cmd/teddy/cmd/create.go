// ABOUTME: Create command for encoding audio files into a container
// ABOUTME: Drives the encode path with a TUI or plain log progress

package cmd

import (
	"fmt"
	"log"

	"github.com/BdN3504/teddy-sub000/internal/ui"
	"github.com/BdN3504/teddy-sub000/pkg/tonie"
	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <audio-file>...",
	Short: "Encode audio files into a new container",
	Long: `Encode one or more audio files (mp3, flac, wav, ogg/opus) into a new
Tonie container. Each input file becomes one chapter.

Example:
  teddy create -o 500304E0 track1.mp3 track2.mp3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		audioID, _ := cmd.Flags().GetUint32("audio-id")
		bitrate, _ := cmd.Flags().GetInt("bitrate")
		cbr, _ := cmd.Flags().GetBool("cbr")
		skipFailed, _ := cmd.Flags().GetBool("skip-failed")
		noTUI, _ := cmd.Flags().GetBool("no-tui")

		tracks := make([]tonie.TrackSource, len(args))
		for i, path := range args {
			tracks[i] = tonie.FileTrack(path)
		}
		opts := tonie.EncodeOptions{
			AudioID:          audioID,
			Bitrate:          bitrate,
			VBR:              !cbr,
			SkipFailedTracks: skipFailed,
		}

		var c *tonie.Container
		if noTUI {
			var err error
			c, err = tonie.Encode(tracks, opts, &logCallback{})
			if err != nil {
				return err
			}
		} else {
			err := ui.Run(func(cb *ui.Callback) error {
				var err error
				c, err = tonie.Encode(tracks, opts, cb)
				return err
			})
			if err != nil {
				return err
			}
		}

		if err := c.WriteFile(output); err != nil {
			return err
		}
		log.Printf("wrote %s: id 0x%08X, %d chapters, %d bytes audio",
			output, c.Header.AudioID, len(c.Header.Chapters), len(c.Audio))
		fmt.Printf("%s: %d chapters, audio id 0x%08X\n", output, len(c.Header.Chapters), c.Header.AudioID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringP("output", "o", "500304E0", "Output file path")
	createCmd.Flags().Uint32("audio-id", 0, "Audio id (default: derived from the current time)")
	createCmd.Flags().Int("bitrate", tonie.DefaultBitrate, "Opus bitrate in bits per second")
	createCmd.Flags().Bool("cbr", false, "Request constant bitrate")
	createCmd.Flags().Bool("skip-failed", false, "Skip tracks that fail instead of aborting")
	createCmd.Flags().Bool("no-tui", false, "Disable the progress TUI, log progress instead")
	rootCmd.AddCommand(createCmd)
}
