package main

import (
	"fmt"
	"os"

	"github.com/meghaa105/personal-finance-sub000/cmd/categories"
	"github.com/meghaa105/personal-finance-sub000/cmd/export"
	"github.com/meghaa105/personal-finance-sub000/cmd/importcmd"
	"github.com/meghaa105/personal-finance-sub000/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
