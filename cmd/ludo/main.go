// ludo - a Ludo rules engine with an interactive console mode and
// heuristic self-play.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yourusername/ludoengine/internal/board"
	"github.com/yourusername/ludoengine/internal/dice"
	"github.com/yourusername/ludoengine/pkg/engine"
	"github.com/yourusername/ludoengine/pkg/gamelog"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "play":
		cmdPlay(args)
	case "autoplay":
		cmdAutoplay(args)
	case "replay":
		cmdReplay(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ludo - Ludo Rules Engine

Usage: ludo <command> [options]

Commands:
  play      Play an interactive game on the console
  autoplay  Run heuristic self-play games and report statistics
  replay    Verify a recorded game transcript

Use "ludo <command> -h" for command-specific help.`)
}

func newGame(players int, seed int64) (*engine.Game, error) {
	var opts []engine.Option
	if seed != 0 {
		opts = append(opts, engine.WithRoller(dice.New(&dice.Config{Seed: seed})))
	}
	return engine.New(players, opts...)
}

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	players := fs.Int("players", 2, "Number of players (2-4)")
	seed := fs.Int64("seed", 0, "Dice seed (0 = random)")
	fs.Parse(args)

	game, err := newGame(*players, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ludo, %d players. Commands: roll, move <token>, best, state, reset, quit\n", *players)
	printState(game)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", game.Current())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "roll", "r":
			v := game.Roll()
			if v < 0 {
				fmt.Println(game.Status())
				continue
			}
			fmt.Printf("rolled %d\n", v)
			printState(game)
		case "move", "m":
			if len(fields) < 2 {
				fmt.Println("usage: move <token 0-3>")
				continue
			}
			token, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("usage: move <token 0-3>")
				continue
			}
			if err := game.Select(token); err != nil {
				fmt.Printf("rejected: %v\n", err)
				continue
			}
			printState(game)
		case "best", "b":
			token := game.BestMove()
			if token < 0 {
				fmt.Println("no pending roll")
				continue
			}
			fmt.Printf("suggested token: %d\n", token)
		case "state", "s":
			printState(game)
		case "reset":
			game.Reset()
			printState(game)
		case "quit", "q", "exit":
			return
		default:
			fmt.Println("commands: roll, move <token>, best, state, reset, quit")
		}

		if game.Phase() == engine.Finished {
			fmt.Println(game.Status())
			return
		}
	}
}

func cmdAutoplay(args []string) {
	fs := flag.NewFlagSet("autoplay", flag.ExitOnError)
	players := fs.Int("players", 2, "Number of players (2-4)")
	games := fs.Int("games", 100, "Number of games to play")
	seed := fs.Int64("seed", 0, "Dice seed (0 = random)")
	verbose := fs.Bool("verbose", false, "Print each game result")
	record := fs.String("record", "", "Write the last game's transcript to this file")
	fs.Parse(args)

	wins := make(map[engine.Color]int)
	totalTurns := 0
	var lastLog *gamelog.Log

	for i := 0; i < *games; i++ {
		gameSeed := *seed
		if gameSeed != 0 {
			gameSeed += int64(i)
		}
		game, err := newGame(*players, gameSeed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		log := &gamelog.Log{Players: *players, Start: game.Current()}
		turns := playOut(game, log)
		totalTurns += turns

		winner := game.Snapshot().Ranking[0]
		wins[winner]++
		lastLog = log
		if *verbose {
			fmt.Printf("game %d: %s wins in %d turns\n", i+1, winner, turns)
		}
	}

	fmt.Printf("played %d games, avg %.1f turns\n", *games, float64(totalTurns)/float64(*games))
	for _, c := range mustColors(*players) {
		fmt.Printf("  %-6s %d wins (%.1f%%)\n", c, wins[c], 100*float64(wins[c])/float64(*games))
	}

	if *record != "" && lastLog != nil {
		f, err := os.Create(*record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := lastLog.Write(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("transcript written to %s\n", *record)
	}
}

// playOut drives a game to completion with the built-in heuristic,
// recording every turn, and returns the number of rolls taken.
func playOut(game *engine.Game, log *gamelog.Log) int {
	turns := 0
	for game.Phase() != engine.Finished {
		actor := game.Current()
		roll := game.Roll()
		if roll < 0 {
			break
		}
		turns++

		if game.Phase() == engine.AwaitingSelection {
			token := game.BestMove()
			log.Add(actor, roll, token)
			if err := game.Select(token); err != nil {
				// the heuristic only proposes legal tokens
				panic(err)
			}
		} else {
			log.Add(actor, roll, gamelog.NoToken)
		}
	}
	return turns
}

func cmdReplay(args []string) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	file := fs.String("file", "", "Transcript file to verify")
	fs.Parse(args)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: file required")
		fmt.Fprintln(os.Stderr, "Usage: ludo replay -file <transcript>")
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	log, err := gamelog.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := gamelog.Replay(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Replay failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("transcript verified: %d turns\n", len(log.Entries))
	printState(game)
}

func mustColors(players int) []engine.Color {
	colors, err := engine.ActiveColors(players)
	if err != nil {
		panic(err)
	}
	return colors
}

// printState renders the grid with one letter per token and a summary
// line of positions, legal moves and status.
func printState(game *engine.Game) {
	b := game.Board()
	snap := game.Snapshot()

	var grid [board.Size][board.Size]byte
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			grid[y][x] = ' '
		}
	}
	for _, c := range snap.Players {
		for _, coord := range b.Path(int(c)) {
			if grid[coord.Y][coord.X] == ' ' {
				grid[coord.Y][coord.X] = '.'
			}
			if b.SafeAt(coord) {
				grid[coord.Y][coord.X] = '*'
			}
		}
		for _, coord := range b.Yard(int(c)) {
			grid[coord.Y][coord.X] = '.'
		}
	}
	letters := map[engine.Color]byte{
		engine.Red: 'R', engine.Green: 'G', engine.Yellow: 'Y', engine.Blue: 'B',
	}
	for _, c := range snap.Players {
		yard := b.Yard(int(c))
		for token := 0; token < engine.TokensPerColor; token++ {
			coord, ok := game.TokenCoord(c, token)
			if !ok {
				coord = yard[token]
			}
			grid[coord.Y][coord.X] = letters[c]
		}
	}

	fmt.Println("+" + strings.Repeat("-", board.Size) + "+")
	for y := 0; y < board.Size; y++ {
		fmt.Printf("|%s|\n", grid[y][:])
	}
	fmt.Println("+" + strings.Repeat("-", board.Size) + "+")

	for _, c := range snap.Players {
		fmt.Printf("%-6s %v\n", c, snap.Positions[c])
	}
	if len(snap.LegalMoves) > 0 {
		fmt.Printf("legal: %v\n", snap.LegalMoves)
	}
	fmt.Println(snap.Status)
}
