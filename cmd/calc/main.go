package main

import "github.com/pengelbrecht/calc/cmd/calc/cmd"

func main() {
	cmd.Execute()
}
