// Package script reads replay scripts: YAML lists of operations that drive
// the visualizer without a terminal.
//
//	policy: overlap
//	steps:
//	  - op: insert_tail
//	    value: "10"
//	  - op: insert_at
//	    value: "7"
//	    position: 1
//	  - op: delete_head
//	    wait: 300ms
//	  - op: search
//	    value: "10"
//
// Each step fills the value and position fields and presses the operation
// button, exactly as a user would. Wait is the time that passes before the
// next step, on the wall clock or on the replay's virtual clock.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/five82/listviz/internal/visualizer"
)

// ErrNoSteps is returned for scripts without steps.
var ErrNoSteps = errors.New("script has no steps")

// Script is a parsed replay script.
type Script struct {
	// Policy overrides the configured overlap policy when set.
	Policy *visualizer.OverlapPolicy
	Steps  []Step
}

// Step is one button press.
type Step struct {
	Op       visualizer.Op
	Value    string
	Position *int
	Wait     time.Duration
}

type rawScript struct {
	Policy string    `yaml:"policy"`
	Steps  []rawStep `yaml:"steps"`
}

type rawStep struct {
	Op       string        `yaml:"op"`
	Value    string        `yaml:"value"`
	Position *int          `yaml:"position"`
	Wait     time.Duration `yaml:"wait"`
}

// Load reads and parses the script at path.
func Load(path string) (Script, error) {
	file, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Parse(file)
}

// Parse decodes a script. Unknown keys, unknown operations and negative
// waits are errors.
func Parse(r io.Reader) (Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawScript
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, ErrNoSteps
		}
		return Script{}, fmt.Errorf("parse script: %w", err)
	}

	var s Script
	if strings.TrimSpace(raw.Policy) != "" {
		policy, err := visualizer.ParsePolicy(raw.Policy)
		if err != nil {
			return Script{}, fmt.Errorf("policy: %w", err)
		}
		s.Policy = &policy
	}

	if len(raw.Steps) == 0 {
		return Script{}, ErrNoSteps
	}
	for i, rs := range raw.Steps {
		op, err := visualizer.ParseOp(rs.Op)
		if err != nil {
			return Script{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		if rs.Wait < 0 {
			return Script{}, fmt.Errorf("step %d: wait must not be negative", i+1)
		}
		s.Steps = append(s.Steps, Step{Op: op, Value: rs.Value, Position: rs.Position, Wait: rs.Wait})
	}
	return s, nil
}

// Apply fills the fields and presses the step's button.
func (s Step) Apply(st visualizer.State) (visualizer.State, []visualizer.Task) {
	return st.SetValueInput(s.Value).SetPositionInput(s.positionText()).Press(s.Op)
}

// String describes the step for frame captions.
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op.Label())
	if s.Value != "" {
		b.WriteString(" value=")
		b.WriteString(strconv.Quote(s.Value))
	}
	if s.Position != nil {
		b.WriteString(" position=")
		b.WriteString(strconv.Itoa(*s.Position))
	}
	return b.String()
}

func (s Step) positionText() string {
	if s.Position == nil {
		return ""
	}
	return strconv.Itoa(*s.Position)
}
