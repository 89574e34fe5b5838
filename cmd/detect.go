package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordlab/chord"
	"github.com/jsphweid/chordlab/midi"
	"github.com/jsphweid/chordlab/model"
	"github.com/spf13/cobra"
)

var detectSMFPath string

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().StringVar(&detectSMFPath, "smf", "", "also write the voiced chord to a MIDI file")
}

var detectCmd = &cobra.Command{
	Use:   "detect [note numbers]",
	Short: "Detects a chord from held note numbers",
	Long:  `Detects a chord from held note numbers, e.g. detect 60 64 67`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 3 {
			panic("Need at least 3 note numbers...")
		}
		var notes model.Notes
		for _, arg := range args {
			num, err := strconv.Atoi(arg)
			if err != nil || num < 0 || num > 127 {
				panic("Not a note number: " + arg)
			}
			notes = append(notes, uint8(num))
		}
		detect(notes)
	},
}

func detect(notes model.Notes) {
	c, ok := chord.Detect(notes)
	if !ok {
		fmt.Println("no match")
		return
	}
	fmt.Println(chord.Name(c))

	voiced := chord.Voice(c, chord.DefaultBase)
	fmt.Printf("voiced: %v\n", voiced)

	if detectSMFPath != "" {
		s := midi.VoicingSMF(voiced, midi.DefaultHoldTicks, 100)
		if err := s.WriteFile(detectSMFPath); err != nil {
			panic("Could not write MIDI file: " + err.Error())
		}
		fmt.Printf("wrote %v\n", detectSMFPath)
	}
}
