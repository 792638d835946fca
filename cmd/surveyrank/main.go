// main is the entry point for the surveyrank CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/surveyrank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
