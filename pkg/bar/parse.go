package bar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// OpKind identifies a parsed markup element.
type OpKind int

const (
	OpText OpKind = iota
	OpColor
	OpRect
	OpForward
)

// Op is one element of a markup string.
type Op struct {
	Kind  OpKind
	Text  string // OpText
	Color string // OpColor
	X, Y  int    // OpRect
	W, H  int    // OpRect
	N     int    // OpForward
}

var errUnterminated = errors.New("unterminated escape")

// Parse splits markup into text runs and escapes. Unknown escapes are an error.
func Parse(markup string) ([]Op, error) {
	var ops []Op
	rest := markup
	for rest != "" {
		start := strings.IndexByte(rest, '^')
		if start == -1 {
			ops = append(ops, Op{Kind: OpText, Text: rest})
			break
		}
		if start > 0 {
			ops = append(ops, Op{Kind: OpText, Text: rest[:start]})
		}
		end := strings.IndexByte(rest[start+1:], '^')
		if end == -1 {
			return nil, fmt.Errorf("offset %d: %w", len(markup)-len(rest)+start, errUnterminated)
		}
		body := rest[start+1 : start+1+end]
		op, err := parseEscape(body)
		if err != nil {
			return nil, fmt.Errorf("escape %q: %w", body, err)
		}
		ops = append(ops, op)
		rest = rest[start+end+2:]
	}
	return ops, nil
}

func parseEscape(body string) (Op, error) {
	if body == "" {
		return Op{}, errors.New("empty escape")
	}
	arg := body[1:]
	switch body[0] {
	case 'c':
		return Op{Kind: OpColor, Color: arg}, nil
	case 'f':
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: OpForward, N: n}, nil
	case 'r':
		parts := strings.Split(arg, ",")
		if len(parts) != 4 {
			return Op{}, fmt.Errorf("rect needs 4 values, got %d", len(parts))
		}
		var v [4]int
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return Op{}, err
			}
			v[i] = n
		}
		return Op{Kind: OpRect, X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	default:
		return Op{}, fmt.Errorf("unknown escape %q", body[0])
	}
}

// Strip returns only the literal text of markup. An escape cut off at the
// end, as left by truncation, is dropped. Other malformed markup is returned unchanged.
func Strip(markup string) string {
	ops, err := Parse(markup)
	if errors.Is(err, errUnterminated) {
		// The unterminated escape opens at the last '^'.
		ops, err = Parse(markup[:strings.LastIndexByte(markup, '^')])
	}
	if err != nil {
		return markup
	}
	var b strings.Builder
	for _, op := range ops {
		if op.Kind == OpText {
			b.WriteString(op.Text)
		}
	}
	return b.String()
}
