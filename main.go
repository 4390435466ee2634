package main

import "weldsim/cmd"

func main() {
	cmd.Execute()
}
