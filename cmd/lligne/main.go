// Command lligne is the front-end CLI: scan and parse Lligne source and
// print the result, grounded on cmd/dwscript's main/cmd split.
package main

import (
	"fmt"
	"os"

	"github.com/lligne-lang/lligne-go/cmd/lligne/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
