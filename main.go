package main

import "github.com/familyledger/finance-backend/internal/setup/commands"

func main() {
	commands.Execute()
}
