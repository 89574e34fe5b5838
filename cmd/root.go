package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordlab",
	Short: "Chord practice engine",
	Long:  `Chord practice engine: detection, matching and session generation behind the practice apps.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
