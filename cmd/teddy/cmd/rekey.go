// ABOUTME: Rekey command for assigning a new audio id
// ABOUTME: Rewrites stream serials and header without touching the audio

package cmd

import (
	"fmt"
	"log"

	"github.com/BdN3504/teddy-sub000/internal/audioid"
	"github.com/BdN3504/teddy-sub000/pkg/tonie"
	"github.com/spf13/cobra"
)

// rekeyCmd represents the rekey command
var rekeyCmd = &cobra.Command{
	Use:   "rekey <file>",
	Short: "Assign a new audio id to a container",
	Long: `Assign a new audio id to a Tonie container. Every Ogg page's stream
serial and CRC is rewritten and the header is updated; the Opus audio
itself is untouched. Without --audio-id a fresh timestamp id is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		newID, _ := cmd.Flags().GetUint32("audio-id")

		if output == "" {
			output = args[0]
		}
		if newID == 0 {
			newID = audioid.NewTimestamp().Next()
		}

		c, err := tonie.ReadFile(args[0], true)
		if err != nil {
			return err
		}
		oldID := c.Header.AudioID
		if err := c.Rekey(newID); err != nil {
			return err
		}
		if err := c.WriteFile(output); err != nil {
			return err
		}

		log.Printf("rekeyed %s: 0x%08X -> 0x%08X", output, oldID, newID)
		fmt.Printf("%s: audio id 0x%08X\n", output, newID)
		return nil
	},
}

func init() {
	rekeyCmd.Flags().StringP("output", "o", "", "Output file path (default: rewrite in place)")
	rekeyCmd.Flags().Uint32("audio-id", 0, "New audio id (default: derived from the current time)")
	rootCmd.AddCommand(rekeyCmd)
}
