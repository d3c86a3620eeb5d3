package core

import "testing"

func TestNewNode(t *testing.T) {
	n := NewNode(42)
	if n.Value != 42 {
		t.Errorf("Value = %d; want 42", n.Value)
	}
	if n.Left != nil || n.Right != nil {
		t.Errorf("children = (%v, %v); want both nil", n.Left, n.Right)
	}
}

func TestNewNode_NegativeValue(t *testing.T) {
	// Negative payloads are ordinary values; only the builder package
	// interprets specific negatives as null markers.
	n := NewNode(-999)
	if n.Value != -999 {
		t.Errorf("Value = %d; want -999", n.Value)
	}
}
