package main

import "github.com/mouse-blink/savelicense/cmd"

func main() {
	cmd.Execute()
}
