package main

import (
	"fmt"
	"io"

	"asmopt/internal/driver"
)

func printTimings(out io.Writer, command driver.Command, results []driver.FileResult) {
	if out == nil {
		return
	}
	payload := driver.Timings(command.String(), results, false)
	fmt.Fprintf(out, "%s: %d file(s), %d from cache\n", payload.Kind, payload.Files, payload.Cached)
	fmt.Fprint(out, driver.MergeTimings(results).Summary())
}
