package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jsphweid/chordlab/chord"
	"github.com/jsphweid/chordlab/midi"
	"github.com/jsphweid/chordlab/model"
	"github.com/spf13/cobra"
)

var listenPort int

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI in port number")
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Detects chords from a live MIDI port",
	Long:  `Detects chords from a live MIDI port`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()

	stop, err := midi.Listen(listenPort, func(notes model.Notes) {
		c, ok := chord.Detect(notes)
		if ok {
			fmt.Printf("%v  %v\n", chord.Name(c), notes)
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
