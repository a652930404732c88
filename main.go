package main

import "github.com/mouse-blink/fretwise/cmd"

func main() {
	cmd.Execute()
}
