package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/fwojciec/mdclip"
)

// reportError prints err for the user and returns it.
func reportError(w io.Writer, err error) error {
	fmt.Fprintf(w, "%s %s\n", color.RedString("error:"), mdclip.ErrorMessage(err))
	return err
}

func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.YellowString("warning:"), fmt.Sprintf(format, args...))
}
