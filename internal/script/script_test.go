package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/listviz/internal/visualizer"
)

const sample = `
policy: overlap
steps:
  - op: insert_tail
    value: "10"
  - op: insert-tail
    value: "20"
  - op: insert_at
    value: "7"
    position: 1
  - op: delete_head
    wait: 300ms
  - op: search
    value: "20"
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	require.NotNil(t, s.Policy)
	assert.Equal(t, visualizer.PolicyOverlap, *s.Policy)
	require.Len(t, s.Steps, 5)

	assert.Equal(t, visualizer.OpInsertTail, s.Steps[1].Op)
	require.NotNil(t, s.Steps[2].Position)
	assert.Equal(t, 1, *s.Steps[2].Position)
	assert.Equal(t, 300*time.Millisecond, s.Steps[3].Wait)
	assert.Nil(t, s.Steps[3].Position)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"empty":        {"", ErrNoSteps.Error()},
		"no steps":     {"policy: cancel\n", ErrNoSteps.Error()},
		"unknown op":   {"steps:\n  - op: reverse\n", "step 1"},
		"unknown key":  {"steps:\n  - op: search\n    colour: red\n", "parse script"},
		"bad policy":   {"policy: queue\nsteps:\n  - op: search\n", "policy"},
		"bad wait":     {"steps:\n  - op: search\n    wait: soon\n", "parse script"},
		"negative":     {"steps:\n  - op: delete_head\n    wait: -1s\n", "must not be negative"},
		"not a script": {"- a\n- b\n", "parse script"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.body))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestStepsReplayTheScenario(t *testing.T) {
	s, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	st := visualizer.New(visualizer.DefaultTiming(), *s.Policy)
	for _, step := range s.Steps[:3] {
		st, _ = step.Apply(st)
		st = st.Settle()
	}
	assert.Equal(t, []string{"10", "7", "20"}, st.Values())
	assert.Empty(t, st.ValueInput)
	assert.Empty(t, st.PositionInput)

	st, tasks := s.Steps[3].Apply(st)
	require.Len(t, tasks, 1)
	assert.Equal(t, visualizer.TaskCommit, tasks[0].Kind)
	st = st.Settle()
	assert.Equal(t, []string{"7", "20"}, st.Values())

	st, _ = s.Steps[4].Apply(st)
	assert.Equal(t, "Found at position(s): 1", st.Message)
}

func TestStepString(t *testing.T) {
	pos := 2
	step := Step{Op: visualizer.OpInsertAt, Value: "x", Position: &pos}
	assert.Equal(t, `Insert At Position value="x" position=2`, step.String())
	assert.Equal(t, "Delete Head", Step{Op: visualizer.OpDeleteHead}.String())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open script")
}
