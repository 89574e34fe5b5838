package main

import "github.com/jsphweid/chordlab/cmd"

func main() {
	cmd.Execute()
}
