// Package gamelog reads and writes Ludo game transcripts: the player count,
// the starting color, and every roll with the token that played it. A
// transcript pins down all of a game's nondeterminism, so replaying one
// reproduces the exact final state.
//
// Example transcript:
//
//	; ludo transcript
//	players 2
//	start blue
//	1) blue 6: 0
//	2) blue 3: 0
//	3) green 2: -
//
// A "-" token marks a turn where the roll was not played: an auto-pass with
// no legal move or a three-six forfeit.
package gamelog

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/ludoengine/internal/dice"
	"github.com/yourusername/ludoengine/pkg/engine"
)

// NoToken marks an entry whose roll was never played.
const NoToken = -1

// Entry is one roll and what became of it.
type Entry struct {
	Color engine.Color
	Roll  int
	Token int // 0..3, or NoToken
}

// Log is a full game transcript.
type Log struct {
	Players int
	Start   engine.Color
	Entries []Entry
}

var (
	playersRE = regexp.MustCompile(`^players\s+([234])$`)
	startRE   = regexp.MustCompile(`^start\s+(red|green|yellow|blue)$`)
	entryRE   = regexp.MustCompile(`^(\d+)\)\s+(red|green|yellow|blue)\s+([1-6]):\s+(-|[0-3])$`)

	colorByName = map[string]engine.Color{
		"red": engine.Red, "green": engine.Green,
		"yellow": engine.Yellow, "blue": engine.Blue,
	}
)

// Add appends one entry.
func (l *Log) Add(c engine.Color, roll, token int) {
	l.Entries = append(l.Entries, Entry{Color: c, Roll: roll, Token: token})
}

// Write emits the transcript in the text format Parse reads.
func (l *Log) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "; ludo transcript\nplayers %d\nstart %s\n", l.Players, l.Start); err != nil {
		return err
	}
	for i, e := range l.Entries {
		token := "-"
		if e.Token != NoToken {
			token = strconv.Itoa(e.Token)
		}
		if _, err := fmt.Fprintf(w, "%d) %s %d: %s\n", i+1, e.Color, e.Roll, token); err != nil {
			return err
		}
	}
	return nil
}

// Parse reads a transcript. The players and start headers must each appear
// exactly once, before any entry. Blank lines and ";" comments are skipped;
// anything else that does not match the format is an error.
func Parse(r io.Reader) (*Log, error) {
	scanner := bufio.NewScanner(r)
	l := &Log{Players: -1, Start: -1}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == ';' {
			continue
		}

		if m := playersRE.FindStringSubmatch(line); m != nil {
			if l.Players >= 0 {
				return nil, fmt.Errorf("gamelog: line %d: duplicate players header", lineNo)
			}
			l.Players, _ = strconv.Atoi(m[1])
			continue
		}
		if m := startRE.FindStringSubmatch(line); m != nil {
			if l.Start >= 0 {
				return nil, fmt.Errorf("gamelog: line %d: duplicate start header", lineNo)
			}
			l.Start = colorByName[m[1]]
			continue
		}
		if m := entryRE.FindStringSubmatch(line); m != nil {
			if l.Players < 0 || l.Start < 0 {
				return nil, fmt.Errorf("gamelog: line %d: entry before headers", lineNo)
			}
			token := NoToken
			if m[4] != "-" {
				token, _ = strconv.Atoi(m[4])
			}
			roll, _ := strconv.Atoi(m[3])
			l.Add(colorByName[m[2]], roll, token)
			continue
		}
		return nil, fmt.Errorf("gamelog: line %d: cannot parse %q", lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if l.Players < 0 {
		return nil, fmt.Errorf("gamelog: missing players header")
	}
	if l.Start < 0 {
		return nil, fmt.Errorf("gamelog: missing start header")
	}
	return l, nil
}

// Replay drives a fresh game through the transcript and returns it. It fails
// if the transcript disagrees with the rules at any step, for example a roll
// attributed to the wrong color or a token the engine rejects.
func Replay(l *Log) (*engine.Game, error) {
	if len(l.Entries) == 0 {
		return engine.New(l.Players, engine.WithStartColor(l.Start))
	}

	rolls := make([]int, len(l.Entries))
	for i, e := range l.Entries {
		rolls[i] = e.Roll
	}
	g, err := engine.New(l.Players,
		engine.WithStartColor(l.Start),
		engine.WithRoller(dice.NewSequence(rolls...)),
	)
	if err != nil {
		return nil, err
	}

	for i, e := range l.Entries {
		if g.Current() != e.Color {
			return nil, fmt.Errorf("gamelog: entry %d: expected %s to act, engine has %s", i+1, e.Color, g.Current())
		}
		if v := g.Roll(); v != e.Roll {
			return nil, fmt.Errorf("gamelog: entry %d: rolled %d, transcript says %d", i+1, v, e.Roll)
		}
		if e.Token == NoToken {
			if g.Phase() == engine.AwaitingSelection {
				return nil, fmt.Errorf("gamelog: entry %d: transcript passes but %s has legal moves", i+1, e.Color)
			}
			continue
		}
		if err := g.Select(e.Token); err != nil {
			return nil, fmt.Errorf("gamelog: entry %d: select token %d: %w", i+1, e.Token, err)
		}
	}
	return g, nil
}
