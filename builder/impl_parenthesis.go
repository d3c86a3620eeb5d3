// SPDX-License-Identifier: MIT
// Package: treebuild/builder
//
// impl_parenthesis.go — recursive-descent parser for parenthesized tree
// notation.
//
// Grammar (no whitespace):
//
//	tree  := value group? group?
//	group := '(' tree ')'
//	value := '-'? digit+
//
// The first group is the left subtree, the second the right. A node with no
// groups is a leaf. The parser moves a single forward cursor over the text;
// malformed input (non-numeric value, unbalanced or trailing parentheses)
// is an error — never a silently recovered partial tree.
//
// Time complexity: O(n)
// Memory usage:    O(h) recursion stack, h = tree height

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/treebuild/core"
)

// parenParser holds the cursor state for one parse. Each call owns its
// parser, so concurrent parses never share state.
type parenParser struct {
	text string
	pos  int
}

// FromParenthesis reconstructs a tree from parenthesized text such as
// "1(2(4)(5))(3(6)(7))". Empty text yields the empty tree.
//
// Errors:
//   - ErrMalformedText   — value token is not a valid integer, or text
//     remains after a complete tree.
//   - ErrUnbalancedParens — missing closing parenthesis.
func FromParenthesis(text string, opts ...BuildOption) (*core.Node, error) {
	_ = newBuildConfig(opts...) // no knobs apply yet; resolved for uniformity
	if len(text) == 0 {
		return nil, nil
	}

	p := &parenParser{text: text}
	root, err := p.parseTree()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.text) {
		return nil, fmt.Errorf("FromParenthesis: trailing input at offset %d: %w",
			p.pos, ErrMalformedText)
	}

	return root, nil
}

// parseTree parses one node and its optional subtree groups.
func (p *parenParser) parseTree() (*core.Node, error) {
	value, err := p.scanValue()
	if err != nil {
		return nil, err
	}
	node := core.NewNode(value)

	// Optional left subtree.
	if node.Left, err = p.parseGroup(); err != nil {
		return nil, err
	}
	// Optional right subtree.
	if node.Right, err = p.parseGroup(); err != nil {
		return nil, err
	}

	return node, nil
}

// parseGroup parses one '(' tree ')' group, or returns (nil, nil) when the
// cursor is not at a group start.
func (p *parenParser) parseGroup() (*core.Node, error) {
	if p.pos >= len(p.text) || p.text[p.pos] != '(' {
		return nil, nil
	}
	p.pos++ // consume '('

	child, err := p.parseTree()
	if err != nil {
		return nil, err
	}

	if p.pos >= len(p.text) || p.text[p.pos] != ')' {
		return nil, fmt.Errorf("FromParenthesis: missing ')' at offset %d: %w",
			p.pos, ErrUnbalancedParens)
	}
	p.pos++ // consume ')'

	return child, nil
}

// scanValue scans a maximal '-'? digit+ run at the cursor and parses it.
func (p *parenParser) scanValue() (int64, error) {
	start := p.pos
	if p.pos < len(p.text) && p.text[p.pos] == '-' {
		p.pos++
	}
	digits := 0
	for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
		p.pos++
		digits++
	}
	if digits == 0 {
		return 0, fmt.Errorf("FromParenthesis: expected integer at offset %d: %w",
			start, ErrMalformedText)
	}

	value, err := strconv.ParseInt(p.text[start:p.pos], 10, 64)
	if err != nil {
		// Digit run too long for int64.
		return 0, fmt.Errorf("FromParenthesis: value %q at offset %d: %w",
			p.text[start:p.pos], start, ErrMalformedText)
	}

	return value, nil
}
