package main

import "openraw/cmd/openraw/cmd"

func main() {
	cmd.Execute()
}
