package main

import "github.com/diogo/msgboard/internal/commands"

func main() {
	commands.Execute()
}
