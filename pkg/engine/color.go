// Package engine implements the Ludo rules: the turn state machine, move
// validation and execution, capture resolution, finish ranking, and a
// single-ply move-recommendation heuristic. A Game owns all of its state;
// nothing is shared between instances.
package engine

import (
	"encoding/json"
	"fmt"
)

// Color identifies a player. The numeric value is also the board quadrant
// whose rotated path the color uses.
type Color int

const (
	Red Color = iota
	Green
	Yellow
	Blue

	// NumColors is the size of the closed color set.
	NumColors
)

// TokensPerColor is the number of tokens each color plays with.
const TokensPerColor = 4

var colorNames = [NumColors]string{"red", "green", "yellow", "blue"}

func (c Color) String() string {
	if c < 0 || c >= NumColors {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// MarshalJSON emits the color name.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON maps a color name back to its value.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range colorNames {
		if n == name {
			*c = Color(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color %q", name)
}

// ActiveColors returns the colors in play for a player count, in turn order.
func ActiveColors(players int) ([]Color, error) {
	switch players {
	case 2:
		return []Color{Blue, Green}, nil
	case 3:
		return []Color{Blue, Red, Green}, nil
	case 4:
		return []Color{Blue, Red, Green, Yellow}, nil
	default:
		return nil, ErrPlayerCount
	}
}

// Phase is the turn state machine's current state.
type Phase int

const (
	// AwaitingRoll accepts only the roll action.
	AwaitingRoll Phase = iota
	// AwaitingSelection accepts only a token selection for the pending roll.
	AwaitingSelection
	// Finished is terminal: every active color has a ranking position.
	Finished
)

var phaseNames = [...]string{"awaiting_roll", "awaiting_selection", "finished"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// MarshalJSON emits the phase name.
func (p Phase) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON maps a phase name back to its value.
func (p *Phase) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range phaseNames {
		if n == name {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", name)
}
