package main

import "github.com/jsphweid/midiprep/cmd"

func main() {
	cmd.Execute()
}
