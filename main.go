package main

import "github.com/devRabbiz/waveboxapp/cmd"

func main() {
	cmd.Execute()
}
