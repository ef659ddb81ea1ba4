// Docshift converts the docstrings of Python source files between
// documentation styles.
package main

import "github.com/dshills/docshift/cmd"

func main() {
	cmd.Execute()
}
