// ABOUTME: Info command for inspecting container headers
// ABOUTME: Prints id, length, chapters and optionally verifies the hash

package cmd

import (
	"fmt"
	"time"

	"github.com/BdN3504/teddy-sub000/pkg/tonie"
	"github.com/BdN3504/teddy-sub000/pkg/tonie/ogg"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show container header information",
	Long: `Show the header fields of a Tonie container: audio id, audio length,
SHA1 hash and chapter markers.

With --verify the audio region is read and hashed to check it against
the header.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verify, _ := cmd.Flags().GetBool("verify")

		c, err := tonie.ReadFile(args[0], verify)
		if err != nil {
			return err
		}
		h := c.Header

		fmt.Printf("audio id:     %d (0x%08X)\n", h.AudioID, h.AudioID)
		if h.AudioID > 0x50000000 {
			// Timestamp-based ids decode to the creation time.
			fmt.Printf("created:      %s\n", time.Unix(int64(h.AudioID), 0).UTC().Format(time.RFC3339))
		}
		fmt.Printf("audio length: %d bytes (%d blocks)\n", h.AudioLength, int(h.AudioLength)/ogg.BlockSize)
		fmt.Printf("sha1:         %X\n", h.Hash)
		fmt.Printf("chapters:     %d\n", len(h.Chapters))
		for i, marker := range h.Chapters {
			fmt.Printf("  %2d. page %d\n", i+1, marker)
		}

		if verify {
			if c.HashValid {
				fmt.Println("hash:         OK")
			} else {
				fmt.Println("hash:         MISMATCH")
			}
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().Bool("verify", false, "Read the audio region and verify the hash")
	rootCmd.AddCommand(infoCmd)
}
