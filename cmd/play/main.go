package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/Amogh-Gurudatta/C-ChessEngine/chessmg"
	"github.com/Amogh-Gurudatta/C-ChessEngine/engine"
)

func main() {
	file := flag.String("file", "board.txt", "Position file loaded at startup and written by 'save'")
	depth := flag.Int("depth", engine.SearchDepth, "Engine search depth in plies")
	flag.Parse()

	board, err := chessmg.LoadFile(*file)
	if err != nil {
		fmt.Printf("No %s found. Loading standard start.\n", *file)
		board = chessmg.NewBoard()
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)

	for {
		fmt.Print(board)

		if board.SideToMove() == chessmg.White {
			fmt.Print("\nYour move (e.g. e2e4, a7a8q, or 'quit'): ")
			if !scanner.Scan() {
				break
			}
			input := scanner.Text()

			switch input {
			case "quit":
				fmt.Println("Exiting...")
				return
			case "save":
				if err := board.SaveFile(*file); err != nil {
					fmt.Println("Save failed:", err)
				} else {
					fmt.Println("Saved.")
				}
				continue
			}

			parsed, err := chessmg.ParseMove(input)
			if err != nil {
				fmt.Println("Invalid format.")
				continue
			}
			move, ok := board.ResolveMove(parsed)
			if !ok {
				fmt.Println("Illegal move.")
				continue
			}
			board.MakeMove(move)
		} else {
			fmt.Println("\nAI thinking...")
			move, _ := engine.SearchToDepth(board, *depth)
			if move.IsNull() {
				fmt.Println("Game over (Checkmate or Stalemate).")
				break
			}
			fmt.Println("AI plays:", move)
			board.MakeMove(move)
		}
	}

	fmt.Println("Exiting...")
}
