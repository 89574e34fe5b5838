package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jsphweid/chordlab/chord"
	"github.com/jsphweid/chordlab/model"
	"github.com/jsphweid/chordlab/session"
	"github.com/spf13/cobra"
)

var (
	generateCount      int
	generateMode       string
	generateTypes      []string
	generateScales     []string
	generateInversions bool
	generateSeed       int64
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&generateCount, "count", 10, "number of chords to draw")
	generateCmd.Flags().StringVar(&generateMode, "mode", model.ModeChordTypes, "chordTypes or scales")
	generateCmd.Flags().StringSliceVar(&generateTypes, "types", []string{"maj", "min"}, "chord type ids for chordTypes mode")
	generateCmd.Flags().StringSliceVar(&generateScales, "scales", nil, "scale root names for scales mode, e.g. C,F#,Bb")
	generateCmd.Flags().BoolVar(&generateInversions, "inversions", false, "include inversions in the pool")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "rng seed, 0 seeds from the clock")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a practice session",
	Long:  `Generates a practice session`,
	Run: func(cmd *cobra.Command, args []string) {
		generate()
	},
}

func generate() {
	var scaleRoots []uint8
	for _, name := range generateScales {
		pc, ok := chord.ParseNoteName(name)
		if !ok {
			panic("Not a note name: " + name)
		}
		scaleRoots = append(scaleRoots, pc)
	}

	cfg := model.SessionConfig{
		ChordCount:        generateCount,
		Mode:              generateMode,
		ChordTypeIds:      generateTypes,
		ScaleRoots:        scaleRoots,
		IncludeInversions: generateInversions,
	}

	seed := generateSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	chords, err := session.Generate(cfg, rng)
	if err != nil {
		panic("Could not generate session: " + err.Error())
	}
	for _, c := range chords {
		fmt.Println(chord.Name(c))
	}
}
