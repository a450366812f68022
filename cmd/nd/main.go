// Package main provides the nd command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/nd-ml/nd/array"
	"github.com/nd-ml/nd/stats"
	"github.com/nd-ml/nd/tio"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("nd %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("nd - n-dimensional arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Print a broadcast sum and its row means")
}

func demo() {
	col, _ := array.Linspace[float64](0, 2, 3)
	row, _ := array.Linspace[float64](0, 30, 4)
	grid := array.Materialize(array.Add(col.Reshape(3, 1), row.Reshape(1, 4)))

	opts := tio.DefaultFormat()
	fmt.Println(tio.Sprint[float64](grid, opts))

	means, err := stats.MeanAxis[float64](grid, 1)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("row means:", tio.Sprint[float64](means, opts))
}
