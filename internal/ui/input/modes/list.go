package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/ui/input/types"
)

// listKeys handles cursor movement shared by every list view, including
// the vim-style gg / G jumps
type listKeys struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func (l *listKeys) handle(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return navigate("up"), true
	case tea.KeyDown:
		return navigate("down"), true
	case tea.KeyPgUp:
		return navigate("pageup"), true
	case tea.KeyPgDown:
		return navigate("pagedown"), true
	case tea.KeyHome:
		return navigate("home"), true
	case tea.KeyEnd:
		return navigate("end"), true
	}

	switch msg.String() {
	case "j":
		l.lastKeyWasG = false
		return navigate("down"), true
	case "k":
		l.lastKeyWasG = false
		return navigate("up"), true
	case "g":
		if l.lastKeyWasG && time.Since(l.lastGTime) < 500*time.Millisecond {
			l.lastKeyWasG = false
			return navigate("home"), true
		}
		// First g, wait for next key
		l.lastKeyWasG = true
		l.lastGTime = time.Now()
		return nil, true
	case "G":
		l.lastKeyWasG = false
		return navigate("end"), true
	}

	// Any other key cancels the 'g' prefix
	l.lastKeyWasG = false
	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
