package main

import (
	"context"
	"os"

	"github.com/markis/lai/internal/cli"
	"github.com/markis/lai/internal/term"
)

func main() {
	_, noColor := os.LookupEnv("NO_COLOR")

	env := cli.Env{
		Stdin:          os.Stdin,
		StdinTerminal:  term.File(os.Stdin.Fd()),
		StdoutTerminal: term.File(os.Stdout.Fd()),
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		LookupEnv:      os.LookupEnv,
		Color:          !noColor && term.File(os.Stderr.Fd()).IsInteractive(),
	}

	os.Exit(cli.Execute(context.Background(), os.Args[1:], env))
}
