package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/midbel/bobcat"
	"github.com/midbel/bobcat/internal/stdio"
)

func main() {
	os.Exit(run(stdio.Default(), os.Args))
}

// run does not parse flags: every argument after the program name is an
// operand, even one starting with a dash.
func run(st stdio.Stdio, args []string) int {
	name := "bobcat"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}
	var (
		logger = log.New(st.Err, name+": ", 0)
		cat    = bobcat.New(st)
	)
	cat.Report = func(err error) {
		logger.Println(err)
	}
	if err := cat.Run(args); err != nil {
		return 1
	}
	return 0
}
