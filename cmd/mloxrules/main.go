// mloxrules - mlox rule file management
//
// mloxrules merges rule files, splits them into one file per mod section,
// and reports on header presence, section order and duplicate sections.
package main

import (
	"os"

	"github.com/ccollicutt/mloxrules/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
