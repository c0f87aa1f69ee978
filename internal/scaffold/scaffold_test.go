package scaffold

import (
	"context"
	"io/fs"
	"os"
	"testing"

	"github.com/ariel-frischer/create-tap-react/internal/prompt"
	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// scriptedPrompter answers from fixed queues and records the questions asked.
type scriptedPrompter struct {
	selects  []string
	inputs   []string
	confirms []bool

	selectCalls  int
	inputCalls   int
	confirmCalls []string
}

func (p *scriptedPrompter) Select(_ context.Context, _ string, _ []prompt.Option, _ int) (string, error) {
	if p.selectCalls >= len(p.selects) {
		return "", prompt.ErrInterrupted
	}
	v := p.selects[p.selectCalls]
	p.selectCalls++
	return v, nil
}

func (p *scriptedPrompter) Input(_ context.Context, _, defaultValue string, validate prompt.ValidateFunc) (string, error) {
	for p.inputCalls < len(p.inputs) {
		v := p.inputs[p.inputCalls]
		p.inputCalls++
		if v == "" {
			v = defaultValue
		}
		if validate == nil || validate(v) == nil {
			return v, nil
		}
	}
	return "", prompt.ErrInterrupted
}

func (p *scriptedPrompter) Confirm(_ context.Context, message string, _ bool) (bool, error) {
	if len(p.confirmCalls) >= len(p.confirms) {
		return false, prompt.ErrInterrupted
	}
	v := p.confirms[len(p.confirmCalls)]
	p.confirmCalls = append(p.confirmCalls, message)
	return v, nil
}

// recordingFS is OSFS that remembers MkdirAll calls.
type recordingFS struct {
	OSFS
	mkdirs []string
}

func (r *recordingFS) MkdirAll(path string, perm fs.FileMode) error {
	r.mkdirs = append(r.mkdirs, path)
	return r.OSFS.MkdirAll(path, perm)
}
