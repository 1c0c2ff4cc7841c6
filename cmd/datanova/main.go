package main

import "github.com/jhoicas/datanova-api/cmd/datanova/commands"

func main() {
	commands.Execute()
}
