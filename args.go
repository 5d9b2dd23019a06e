// args.go
package main

import (
	"fmt"
	"io"
	"strconv"
)

const usage = `Usage: loadcoil A B D
  where A = whip length in feet
        B = distance of coil from bottom in feet
        D = whip diameter in inches

Report mode and core come from loadcoil.toml or LOADCOIL_* environment variables
(LOADCOIL_MODE=single|multi|inspect, LOADCOIL_CORE=50, ...).
xlsx_file / tsv_file exports apply to the single and multi tables only.
`

func printUsage(w io.Writer) { fmt.Fprint(w, usage) }

// parseArgs: 位置引数 A B D を読んで検証まで済ませる（フラグなし）
func parseArgs(args []string) (Whip, error) {
	if len(args) != 3 {
		return Whip{}, fmt.Errorf("expected 3 arguments, got %d: %w", len(args), ErrInvalidInput)
	}
	var vals [3]float64
	for i, name := range []string{"A", "B", "D"} {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return Whip{}, fmt.Errorf("%s=%q is not a number: %w", name, args[i], ErrInvalidInput)
		}
		vals[i] = x
	}
	w := Whip{A: vals[0], B: vals[1], D: vals[2]}
	if err := w.Validate(); err != nil {
		return Whip{}, err
	}
	return w, nil
}
