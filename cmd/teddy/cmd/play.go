// ABOUTME: Play command for previewing container audio locally
// ABOUTME: Decodes the Opus stream and plays it through the default device

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/BdN3504/teddy-sub000/pkg/audio/decode"
	"github.com/BdN3504/teddy-sub000/pkg/audio/output"
	"github.com/BdN3504/teddy-sub000/pkg/tonie"
	"github.com/spf13/cobra"
)

// playChunk is the number of samples written to the device at once.
const playChunk = 4800

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play a container on the local audio device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		volume, _ := cmd.Flags().GetInt("volume")
		trackNo, _ := cmd.Flags().GetInt("track")

		c, err := tonie.ReadFile(args[0], true)
		if err != nil {
			return err
		}
		if !c.HashValid {
			log.Printf("warning: %s: audio hash does not match the header", args[0])
		}

		data := c.Audio
		if trackNo > 0 {
			chapters, err := tonie.ExtractChapters(c.Header, c.Audio)
			if err != nil {
				return err
			}
			if trackNo > len(chapters) {
				return fmt.Errorf("track %d: file has %d chapters", trackNo, len(chapters))
			}
			data = chapters[trackNo-1]
		}

		track, err := decode.OpusStream(data)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d chapters, playing %s\n", args[0], len(c.Header.Chapters),
			track.Duration().Round(time.Second))

		out := output.NewOto()
		if err := out.Open(track.SampleRate, track.Channels); err != nil {
			return err
		}
		defer out.Close()
		out.SetVolume(volume)

		samples := track.Samples
		for len(samples) > 0 {
			n := playChunk * track.Channels
			if n > len(samples) {
				n = len(samples)
			}
			if err := out.Write(samples[:n]); err != nil {
				return err
			}
			samples = samples[n:]
		}

		return out.Drain()
	},
}

func init() {
	playCmd.Flags().Int("volume", 100, "Playback volume (0-100)")
	playCmd.Flags().Int("track", 0, "Play only this chapter (1-based, 0 = whole file)")
	rootCmd.AddCommand(playCmd)
}
