// ABOUTME: Root command for the teddy CLI
// ABOUTME: Holds global flags and shared logging setup

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "teddy",
	Short: "Teddy - Tonie audio container tool",
	Long: `Teddy creates, inspects and reworks Tonie audio containers: a fixed
4096-byte header followed by a single block-aligned Ogg Opus stream.

Tracks inside a container can be split out and recombined without
re-encoding the audio.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress log output on stderr")
}

// setupLogging directs the standard logger to stderr, a file, both or
// neither, per the global flags.
func setupLogging(cmd *cobra.Command) error {
	logFile, _ := cmd.Flags().GetString("log-file")
	quiet, _ := cmd.Flags().GetBool("quiet")

	var writers []io.Writer
	if !quiet {
		writers = append(writers, os.Stderr)
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		writers = append(writers, f)
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(io.MultiWriter(writers...))
	}
	return nil
}
