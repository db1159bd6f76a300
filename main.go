package main

import "github.com/mouse-blink/jsonfmt/cmd"

func main() {
	cmd.Execute()
}
