// bglogic - backgammon move checker and game recorder
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/yourusername/bglogic/internal/config"
	"github.com/yourusername/bglogic/pkg/engine"
	"github.com/yourusername/bglogic/pkg/fibs"
	"github.com/yourusername/bglogic/pkg/game"
	"github.com/yourusername/bglogic/pkg/transcript"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bglogic: ")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.LoadCLI()
	if err != nil {
		log.Fatal(err)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "show":
		err = cmdShow(args)
	case "check":
		err = cmdCheck(args)
	case "play":
		err = cmdPlay(args, cfg, os.Stdin, os.Stdout)
	case "replay":
		err = cmdReplay(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func printUsage() {
	fmt.Println(`bglogic - Backgammon Move Checker

Usage: bglogic <command> [options]

Commands:
  show      Print a position with pip counts and its position ID
  check     Validate and apply a move to a position
  play      Play a game on the terminal with random dice
  replay    Replay a transcript and print the final position

Use "bglogic <command> -h" for command-specific help.

Position ID Format:
  The position is given as a gnubg position ID, read with -side on roll.
  Example: "4HPwATDgc/ABMA" (starting position)
  A trailing ":matchID" is ignored.

Environment:
  BGLOGIC_SEED        dice seed for play (0 = random)
  BGLOGIC_TRANSCRIPT  file play writes its transcript to
  BGLOGIC_PLAYER1     name of the Black player
  BGLOGIC_PLAYER2     name of the White player`)
}

// parsePosition reads a gnubg position ID with side on roll.
func parsePosition(id string, side engine.Player) (engine.Board, error) {
	if idx := strings.Index(id, ":"); idx >= 0 {
		id = id[:idx]
	}
	b, err := engine.BoardFromPositionID(id, side)
	if err != nil {
		return engine.Board{}, fmt.Errorf("invalid position ID: %w", err)
	}
	return b, nil
}

func printPosition(w io.Writer, b *engine.Board, onRoll engine.Player) {
	fmt.Fprint(w, b.String())
	fmt.Fprintf(w, "Pips: black %d, white %d\n", b.PipCount(engine.Black), b.PipCount(engine.White))
	fmt.Fprintf(w, "Position ID: %s (%s on roll)\n", b.PositionID(onRoll), onRoll)
}

func cmdShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	posFlag := fs.String("position", "", "Position ID (gnubg format)")
	fibsFlag := fs.String("fibs", "", "FIBS board string")
	sideFlag := fs.String("side", "black", "Side on roll for -position")
	fs.Parse(args)

	side, err := engine.ParsePlayer(*sideFlag)
	if err != nil {
		return err
	}

	b := engine.StartingBoard()
	switch {
	case *posFlag != "" && *fibsFlag != "":
		return errors.New("use only one of -position and -fibs")
	case *posFlag != "":
		if b, err = parsePosition(*posFlag, side); err != nil {
			return err
		}
	case *fibsFlag != "":
		fb, err := fibs.Parse(*fibsFlag)
		if err != nil {
			return err
		}
		pos, err := fb.Position()
		if err != nil {
			return err
		}
		b, side = pos.Board, pos.Turn
		fmt.Printf("%s (%s) vs %s, %s to play", fb.Player1, pos.You, fb.Player2, pos.Turn)
		if pos.Dice.Rolled() {
			fmt.Printf(" %s", pos.Dice)
		}
		fmt.Println()
	}

	printPosition(os.Stdout, &b, side)
	return nil
}

func cmdCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	posFlag := fs.String("position", "", "Position ID (gnubg format, default start)")
	sideFlag := fs.String("side", "black", "Side making the move")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: bglogic check [-position <positionID>] [-side black|white] <move>")
		os.Exit(1)
	}

	side, err := engine.ParsePlayer(*sideFlag)
	if err != nil {
		return err
	}
	b := engine.StartingBoard()
	if *posFlag != "" {
		if b, err = parsePosition(*posFlag, side); err != nil {
			return err
		}
	}

	m, err := engine.ParseMove(strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	if !checkMove(os.Stdout, &b, m, side) {
		os.Exit(2)
	}
	printPosition(os.Stdout, &b, side.Switch())
	return nil
}

// checkMove applies m one submove at a time, reporting each, and stops at
// the first that fails.
func checkMove(w io.Writer, b *engine.Board, m engine.Move, side engine.Player) bool {
	for i, s := range m {
		ok, err := b.Validate(s, side)
		switch {
		case err != nil:
			fmt.Fprintf(w, "%d. %-8s error: %v\n", i+1, s, err)
			return false
		case !ok:
			fmt.Fprintf(w, "%d. %-8s illegal: %s\n", i+1, s, illegalReason(b, s, side))
			return false
		}
		if err := b.Apply(s, side); err != nil {
			fmt.Fprintf(w, "%d. %-8s error: %v\n", i+1, s, err)
			return false
		}
		fmt.Fprintf(w, "%d. %-8s ok\n", i+1, s)
	}
	return true
}

// illegalReason names the rule an illegal submove breaks, in the order
// Validate checks them.
func illegalReason(b *engine.Board, s engine.Submove, side engine.Player) string {
	v := b.View(side)
	switch {
	case v[s.From].Owner != side:
		return "chequer belongs to " + side.Switch().String()
	case s.Kind != engine.KindEnter && b.Bar(side) > 0:
		return "chequers on the bar must enter first"
	case v[s.To].Blocks(side):
		return "destination blocked"
	}
	return "not allowed"
}

func cmdPlay(args []string, cfg config.CLI, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	seed := fs.Uint64("seed", cfg.Seed, "Dice seed (0 = random)")
	output := fs.String("o", cfg.Transcript, "Write the transcript to this file")
	fs.Parse(args)

	g := game.New(game.WithRoller(game.NewRoller(*seed)))
	if err := playLoop(g, in, out); err != nil {
		return err
	}
	if *output == "" {
		return nil
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := transcript.Write(f, transcript.FromGame(g, cfg.Player1, cfg.Player2)); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	log.Printf("transcript written to %s", *output)
	return nil
}

// playLoop reads one move per turn from in until a side bears off every
// chequer, the input ends, or "quit" is entered. An empty line passes.
func playLoop(g *game.Game, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if winner, ok := finished(&g.Board); ok {
			fmt.Fprintf(out, "%s wins\n", winner)
			return nil
		}
		if !g.Dice.Rolled() {
			if _, err := g.Roll(); err != nil {
				return err
			}
		}

		fmt.Fprint(out, g.Board.String())
		fmt.Fprintf(out, "%s to play %s (numbering from %s's side)> ", g.Turn, g.Dice, g.Turn)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		var err error
		switch line {
		case "quit", "q":
			return nil
		case "":
			err = g.Pass()
		default:
			err = g.Play(line)
		}
		if err != nil {
			fmt.Fprintf(out, "rejected: %v\n", err)
		}
	}
}

func finished(b *engine.Board) (engine.Player, bool) {
	for _, p := range []engine.Player{engine.Black, engine.White} {
		if b.Off(p) == engine.NumChequers {
			return p, true
		}
	}
	return 0, false
}

func cmdReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: bglogic replay <file>")
		os.Exit(1)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	t, err := transcript.Read(f)
	if err != nil {
		return err
	}
	g, err := transcript.Replay(t)
	if err != nil {
		return err
	}

	fmt.Printf("%s (black) vs %s (white), %d turns\n", t.Player1, t.Player2, len(t.Turns))
	printPosition(os.Stdout, &g.Board, g.Turn)
	return nil
}
