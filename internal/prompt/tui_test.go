package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m tea.Model, msgs ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectModel_Navigation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		keys       []tea.KeyMsg
		wantCursor int
	}{
		"down once":      {keys: []tea.KeyMsg{keyDown}, wantCursor: 1},
		"down wraps":     {keys: []tea.KeyMsg{keyDown, keyDown}, wantCursor: 0},
		"up wraps":       {keys: []tea.KeyMsg{keyUp}, wantCursor: 1},
		"vim keys":       {keys: []tea.KeyMsg{runes("j"), runes("j"), runes("k")}, wantCursor: 1},
		"ignored letter": {keys: []tea.KeyMsg{runes("x")}, wantCursor: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m, _ := press(t, newSelectModel("Pick:", testOptions, 10), tt.keys...)
			assert.Equal(t, tt.wantCursor, m.(selectModel).cursor)
		})
	}
}

func TestSelectModel_Submit(t *testing.T) {
	t.Parallel()

	m, cmd := press(t, newSelectModel("Pick:", testOptions, 10), keyDown, keyEnter)
	sm := m.(selectModel)

	assert.True(t, isQuit(cmd))
	assert.True(t, sm.done)
	assert.Equal(t, "react-auth", sm.options[sm.cursor].Value)
	assert.Contains(t, sm.View(), "React Auth")
}

func TestSelectModel_Interrupt(t *testing.T) {
	t.Parallel()

	m, cmd := press(t, newSelectModel("Pick:", testOptions, 10), keyCtrlC)
	assert.True(t, isQuit(cmd))
	assert.True(t, m.(selectModel).interrupted)
}

func TestSelectModel_Window(t *testing.T) {
	t.Parallel()

	options := make([]Option, 20)
	for i := range options {
		options[i] = Option{Label: string(rune('a' + i)), Value: string(rune('a' + i))}
	}

	tests := map[string]struct {
		cursor    int
		pageSize  int
		wantStart int
		wantEnd   int
	}{
		"fits":          {cursor: 3, pageSize: 30, wantStart: 0, wantEnd: 20},
		"no page size":  {cursor: 3, pageSize: 0, wantStart: 0, wantEnd: 20},
		"top":           {cursor: 0, pageSize: 10, wantStart: 0, wantEnd: 10},
		"middle":        {cursor: 10, pageSize: 10, wantStart: 5, wantEnd: 15},
		"bottom":        {cursor: 19, pageSize: 10, wantStart: 10, wantEnd: 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := newSelectModel("Pick:", options, tt.pageSize)
			m.cursor = tt.cursor
			start, end := m.window()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestInputModel(t *testing.T) {
	t.Parallel()

	rejectSlash := func(s string) error {
		if strings.Contains(s, "/") {
			return errors.New("no slashes")
		}
		return nil
	}

	t.Run("empty submit takes default", func(t *testing.T) {
		t.Parallel()

		m, cmd := press(t, newInputModel("Project name:", "my-app", rejectSlash), keyEnter)
		im := m.(inputModel)
		assert.True(t, isQuit(cmd))
		assert.Equal(t, "my-app", im.value)
	})

	t.Run("typed value", func(t *testing.T) {
		t.Parallel()

		m, cmd := press(t, newInputModel("Project name:", "my-app", rejectSlash), runes("demo"), keyEnter)
		assert.True(t, isQuit(cmd))
		assert.Equal(t, "demo", m.(inputModel).value)
	})

	t.Run("invalid value stays open", func(t *testing.T) {
		t.Parallel()

		m, cmd := press(t, newInputModel("Project name:", "my-app", rejectSlash), runes("a/b"), keyEnter)
		im := m.(inputModel)
		assert.False(t, isQuit(cmd))
		assert.False(t, im.done)
		assert.Equal(t, "no slashes", im.errMsg)
		assert.Contains(t, im.View(), "no slashes")
	})

	t.Run("padding reaches the validator", func(t *testing.T) {
		t.Parallel()

		var seen string
		record := func(s string) error {
			seen = s
			return nil
		}
		m, cmd := press(t, newInputModel("Project name:", "my-app", record), runes(" demo "), keyEnter)
		assert.True(t, isQuit(cmd))
		assert.Equal(t, " demo ", seen)
		assert.Equal(t, " demo ", m.(inputModel).value)
	})

	t.Run("interrupt", func(t *testing.T) {
		t.Parallel()

		m, cmd := press(t, newInputModel("Project name:", "my-app", nil), keyCtrlC)
		assert.True(t, isQuit(cmd))
		assert.True(t, m.(inputModel).interrupted)
	})
}

func TestConfirmModel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key          tea.KeyMsg
		defaultValue bool
		want         bool
	}{
		"y":                 {key: runes("y"), want: true},
		"N":                 {key: runes("N"), defaultValue: true, want: false},
		"enter default no":  {key: keyEnter, want: false},
		"enter default yes": {key: keyEnter, defaultValue: true, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m, cmd := press(t, newConfirmModel("Continue anyway?", tt.defaultValue), tt.key)
			cm := m.(confirmModel)
			require.True(t, isQuit(cmd))
			assert.True(t, cm.done)
			assert.Equal(t, tt.want, cm.value)
		})
	}
}

func TestStopActive_NoProgram(t *testing.T) {
	start := time.Now()
	assert.NotPanics(t, StopActive)
	assert.Less(t, time.Since(start), killWait)
}

func TestTUI_RunClearsActiveProgram(t *testing.T) {
	tui := NewTUI(strings.NewReader("\r"), &strings.Builder{})
	options := []Option{{Label: "Vite", Value: "vite", Short: "Vite"}}

	got, err := tui.Select(context.Background(), "Pick a template", options, 7)
	require.NoError(t, err)
	assert.Equal(t, "vite", got)

	activeMu.Lock()
	defer activeMu.Unlock()
	assert.Nil(t, active)
}
