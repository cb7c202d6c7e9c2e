package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidStep is returned by ParseSteps for a token it does not recognize.
var ErrInvalidStep = errors.New("invalid navigation step: use next, prev, first, last or a page number")

// StepKind identifies which mutator a Step calls.
type StepKind int

// Step kinds.
const (
	StepGoto StepKind = iota
	StepNext
	StepPrev
	StepFirst
	StepLast
)

// String returns the script token for the kind.
func (k StepKind) String() string {
	switch k {
	case StepGoto:
		return "goto"
	case StepNext:
		return "next"
	case StepPrev:
		return "prev"
	case StepFirst:
		return "first"
	case StepLast:
		return "last"
	default:
		return "unknown"
	}
}

// Step is one navigation action. Page is only used by StepGoto.
type Step struct {
	Kind StepKind
	Page int
}

// ParseSteps parses a comma-separated navigation script such as "next,next,7,last".
// Tokens are case-insensitive and surrounding whitespace is ignored. An empty
// script yields no steps.
func ParseSteps(script string) ([]Step, error) {
	if strings.TrimSpace(script) == "" {
		return nil, nil
	}

	tokens := strings.Split(script, ",")
	steps := make([]Step, 0, len(tokens))
	for _, raw := range tokens {
		token := strings.ToLower(strings.TrimSpace(raw))
		switch token {
		case "next", "n":
			steps = append(steps, Step{Kind: StepNext})
		case "prev", "p":
			steps = append(steps, Step{Kind: StepPrev})
		case "first":
			steps = append(steps, Step{Kind: StepFirst})
		case "last":
			steps = append(steps, Step{Kind: StepLast})
		default:
			page, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidStep, raw)
			}
			steps = append(steps, Step{Kind: StepGoto, Page: page})
		}
	}

	return steps, nil
}

// Apply runs each step on m in order.
func Apply(m *Model, steps []Step) {
	for _, s := range steps {
		switch s.Kind {
		case StepGoto:
			m.SetPage(s.Page)
		case StepNext:
			m.Next()
		case StepPrev:
			m.Prev()
		case StepFirst:
			m.First()
		case StepLast:
			m.Last()
		}
	}
}
