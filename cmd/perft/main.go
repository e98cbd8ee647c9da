package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/Amogh-Gurudatta/C-ChessEngine/chessmg"
)

func main() {
	fen := flag.String("fen", chessmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := chessmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := chessmg.PerftDivide(board, *depth)
		type kv struct {
			m chessmg.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		// Sort moves for stable output
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := chessmg.Perft(board, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	fmt.Printf("%d \t\t%d \t\t%s \t%.0f\n", *depth, nodes, elapsed, nps)
}
