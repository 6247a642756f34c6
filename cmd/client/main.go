package main

import (
	"github.com/wagner1975/eezycollectionz/internal/command"
	"github.com/wagner1975/eezycollectionz/internal/command/collection"
	"github.com/wagner1975/eezycollectionz/internal/command/entry"
)

func main() {
	command.Main(
		"eezycollectionz-cli", "a command line client for eezycollectionz",
		collection.Command(),
		entry.Command(),
	)
}
