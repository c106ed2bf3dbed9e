package main

import "litreview/cmd/cli/command"

func main() {
	command.Execute()
}
