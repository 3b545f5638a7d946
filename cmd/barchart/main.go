// Command barchart renders a bar chart from a YAML or JSON data file into a
// PNG image or a PDF page.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	app := NewApp()

	if err := app.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
