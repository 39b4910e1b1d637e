package utils

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

var colorYellow = color.New(color.FgYellow).Add(color.Bold).SprintFunc()

/**************************************************************************************************
** Pretty disassembles a variable and displays its struct and values. Used by the dump
** command to inspect a user's in-memory object graph.
**************************************************************************************************/
func Pretty(variable ...interface{}) {
	spew.Config.Indent = "    "
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
	for _, each := range variable {
		spew.Dump(each)
	}
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
}
