// ABOUTME: Split command for extracting chapters as playable Opus files
// ABOUTME: Losslessly exports each chapter with a fresh stream identity

package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BdN3504/teddy-sub000/internal/audioid"
	"github.com/BdN3504/teddy-sub000/pkg/tonie"
	"github.com/spf13/cobra"
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Split a container into playable Opus files",
	Long: `Split a Tonie container into standalone Ogg Opus files, one per
chapter, without re-encoding the audio. Each file gets its own stream
serial and a timeline starting at zero. Output files are numbered
01.opus, 02.opus and so on.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("output-dir")

		c, err := tonie.ReadFile(args[0], true)
		if err != nil {
			return err
		}
		if !c.HashValid {
			log.Printf("warning: %s: audio hash does not match the header", args[0])
		}

		chapters, err := tonie.ExtractChapters(c.Header, c.Audio)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
		ids := audioid.NewTimestamp()
		for i, chapter := range chapters {
			data, err := tonie.ExportOpus(chapter, ids.Next())
			if err != nil {
				return fmt.Errorf("chapter %d: %w", i+1, err)
			}
			path := filepath.Join(outDir, fmt.Sprintf("%02d.opus", i+1))
			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}
			log.Printf("wrote %s (%d bytes)", path, len(data))
		}

		fmt.Printf("split %s into %d files under %s\n", args[0], len(chapters), outDir)
		return nil
	},
}

func init() {
	splitCmd.Flags().StringP("output-dir", "o", ".", "Directory for the chapter files")
	rootCmd.AddCommand(splitCmd)
}
