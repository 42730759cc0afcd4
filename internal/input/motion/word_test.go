package motion

import (
	"testing"

	"github.com/dshills/modalkit/internal/host"
)

func TestWordForward(t *testing.T) {
	ctx := testCtx("foo bar, baz\nqux")

	tests := []struct {
		name   string
		motion string
		pos    host.Position
		want   host.Position
	}{
		{"word to word", "wordForward", host.Position{Line: 0, Col: 0}, host.Position{Line: 0, Col: 4}},
		{"word to punct", "wordForward", host.Position{Line: 0, Col: 4}, host.Position{Line: 0, Col: 7}},
		{"punct to word", "wordForward", host.Position{Line: 0, Col: 7}, host.Position{Line: 0, Col: 9}},
		{"across newline", "wordForward", host.Position{Line: 0, Col: 9}, host.Position{Line: 1, Col: 0}},
		{"WORD skips punct", "bigWordForward", host.Position{Line: 0, Col: 4}, host.Position{Line: 0, Col: 9}},
		{"mid word", "wordForward", host.Position{Line: 0, Col: 1}, host.Position{Line: 0, Col: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compute(t, ctx, tt.motion, tt.pos); got != tt.want {
				t.Errorf("%s from %v = %v, want %v", tt.motion, tt.pos, got, tt.want)
			}
		})
	}
}

func TestWordBackward(t *testing.T) {
	ctx := testCtx("foo bar, baz\nqux")

	tests := []struct {
		name   string
		motion string
		pos    host.Position
		want   host.Position
	}{
		{"to current word start", "wordBackward", host.Position{Line: 0, Col: 6}, host.Position{Line: 0, Col: 4}},
		{"at word start to previous", "wordBackward", host.Position{Line: 0, Col: 4}, host.Position{Line: 0, Col: 0}},
		{"from word to punct", "wordBackward", host.Position{Line: 0, Col: 9}, host.Position{Line: 0, Col: 7}},
		{"across newline", "wordBackward", host.Position{Line: 1, Col: 0}, host.Position{Line: 0, Col: 9}},
		{"WORD treats bar, as one", "bigWordBackward", host.Position{Line: 0, Col: 9}, host.Position{Line: 0, Col: 4}},
		{"at origin stays", "wordBackward", host.Position{Line: 0, Col: 0}, host.Position{Line: 0, Col: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compute(t, ctx, tt.motion, tt.pos); got != tt.want {
				t.Errorf("%s from %v = %v, want %v", tt.motion, tt.pos, got, tt.want)
			}
		})
	}
}

func TestWordEnd(t *testing.T) {
	ctx := testCtx("foo bar, baz")

	tests := []struct {
		name   string
		motion string
		pos    host.Position
		want   host.Position
	}{
		{"to current word end", "wordEnd", host.Position{Line: 0, Col: 0}, host.Position{Line: 0, Col: 2}},
		{"at end to next word end", "wordEnd", host.Position{Line: 0, Col: 2}, host.Position{Line: 0, Col: 6}},
		{"punct run end", "wordEnd", host.Position{Line: 0, Col: 6}, host.Position{Line: 0, Col: 7}},
		{"WORD end includes punct", "bigWordEnd", host.Position{Line: 0, Col: 4}, host.Position{Line: 0, Col: 7}},
		{"at buffer end stays", "wordEnd", host.Position{Line: 0, Col: 11}, host.Position{Line: 0, Col: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compute(t, ctx, tt.motion, tt.pos); got != tt.want {
				t.Errorf("%s from %v = %v, want %v", tt.motion, tt.pos, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		big  bool
		want charClass
	}{
		{'a', false, classWord},
		{'Z', false, classWord},
		{'0', false, classWord},
		{'_', false, classWord},
		{',', false, classPunct},
		{'(', false, classPunct},
		{' ', false, classSpace},
		{'\t', false, classSpace},
		{'\n', false, classSpace},
		{',', true, classWord},
		{' ', true, classSpace},
	}

	for _, tt := range tests {
		if got := Classify(tt.r, tt.big); got != tt.want {
			t.Errorf("Classify(%q, big=%v) = %v, want %v", tt.r, tt.big, got, tt.want)
		}
	}
}
