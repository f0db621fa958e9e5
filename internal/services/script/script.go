// Package script parses and plays back deterministic command scripts such as
// "left left 1s rotate down*3 2500ms".
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/mcoot/blockdrop/internal/model"
)

// Step is either a command or a wait
type Step struct {
	Command model.Command
	Wait    time.Duration
}

// IsWait returns true if the step advances time instead of issuing a command
func (s Step) IsWait() bool {
	return s.Command == ""
}

// String renders the step in script syntax
func (s Step) String() string {
	if s.IsWait() {
		return s.Wait.String()
	}
	return string(s.Command)
}

// Parse reads a script. Tokens are separated by whitespace or commas; each is a
// command name, alias or key, or a Go duration. A "*N" suffix repeats the token.
func Parse(src string) ([]Step, error) {
	tokens := strings.FieldsFunc(src, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var steps []Step
	for i, token := range tokens {
		body, repeat, err := splitRepeat(token)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %v", model.ErrInvalidScript, i+1, token, err)
		}

		step, err := parseStep(body)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %v", model.ErrInvalidScript, i+1, token, err)
		}

		for range repeat {
			steps = append(steps, step)
		}
	}
	return steps, nil
}

func splitRepeat(token string) (string, int, error) {
	body, count, found := strings.Cut(token, "*")
	if !found {
		return token, 1, nil
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return "", 0, errors.New("repeat count must be a positive integer")
	}
	return body, n, nil
}

func parseStep(body string) (Step, error) {
	if body == "" {
		return Step{}, errors.New("empty token")
	}
	if body[0] >= '0' && body[0] <= '9' {
		d, err := time.ParseDuration(body)
		if err != nil {
			return Step{}, err
		}
		if d <= 0 {
			return Step{}, errors.New("wait must be positive")
		}
		return Step{Wait: d}, nil
	}
	cmd, err := model.ParseCommand(body)
	if err != nil {
		return Step{}, err
	}
	return Step{Command: cmd}, nil
}

// Target is what a script drives
type Target interface {
	Tick(delta time.Duration)
	ApplyCommand(cmd model.Command) bool
}

// Result summarises a played script
type Result struct {
	Commands int           // Commands issued
	Applied  int           // Commands the target acted on
	Frames   int           // Ticks issued
	Elapsed  time.Duration // Total simulated time
}

// Play runs steps against target. Waits are broken into ticks of at most frame.
func Play(target Target, steps []Step, frame time.Duration) (Result, error) {
	if frame <= 0 {
		return Result{}, fmt.Errorf("%w: frame must be positive", model.ErrInvalidScript)
	}

	var result Result
	for _, step := range steps {
		if !step.IsWait() {
			result.Commands++
			if target.ApplyCommand(step.Command) {
				result.Applied++
			}
			continue
		}

		for remaining := step.Wait; remaining > 0; {
			delta := min(frame, remaining)
			target.Tick(delta)
			remaining -= delta
			result.Frames++
			result.Elapsed += delta
		}
	}
	return result, nil
}
