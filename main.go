package main

import (
	"fmt"
	"os"
	"strconv"

	"sentence-browser/internal/config"
	"sentence-browser/internal/core/browse"
	"sentence-browser/internal/corpus"
)

// One-shot mode: print the grouped view for a single chapter without the TUI.
// The chapter may be given as the only argument; otherwise the configured
// start chapter is used.
func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Println("[config]: error reading rc:", err)
		os.Exit(1)
	}

	chapter := cfg.StartChapter
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Println("[args]: chapter must be a number, got:", os.Args[1])
			os.Exit(1)
		}
		chapter = n
	}
	chapter = browse.ClampChapter(chapter)

	store := corpus.NewStore(cfg.DataPath)
	table, err := store.Table()
	if err != nil {
		fmt.Println("[corpus]: error loading table:", err)
		os.Exit(1)
	}

	sel := browse.NewSelection(table)
	sel.Chapter = chapter

	rows := browse.Filter(table, sel)
	fmt.Print(browse.RenderGroups(browse.GroupByType(rows)))
}
