package operator

import (
	"context"
	"testing"

	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keyparse"
)

func TestParseSurroundAdd(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		status   keyparse.Status
		args     Args
		delim    rune
	}{
		{"y alone waits", "y", keyparse.StatusNeedsMoreKey, Args{}, 0},
		{"ys waits for target", "ys", keyparse.StatusNeedsMoreKey, Args{}, 0},
		{"target complete waits for delimiter", "ysiw", keyparse.StatusNeedsMoreKey, Args{}, 0},
		{"object target", "ysiw)", keyparse.StatusMatch, Args{TextObject: "iw"}, ')'},
		{"motion target", "ysw\"", keyparse.StatusMatch, Args{Motion: "wordForward"}, '"'},
		{"capture reading wins over bare find", "ysf)", keyparse.StatusNeedsMoreKey, Args{}, 0},
		{"find target with capture", "ysf,)", keyparse.StatusMatch, Args{Motion: "findChar"}, ')'},
		{"unknown delimiter", "ysiwz", keyparse.StatusNoMatch, Args{}, 0},
		{"unknown target", "ysq", keyparse.StatusNoMatch, Args{}, 0},
		{"not a surround", "dw", keyparse.StatusNoMatch, Args{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, delim, st := ParseSurroundAdd(key.MustTokenize(tt.notation))
			if st != tt.status {
				t.Fatalf("status = %v, want %v", st, tt.status)
			}
			if target.Args != tt.args || delim != tt.delim {
				t.Errorf("target = %+v delim %q", target.Args, delim)
			}
		})
	}
}

func TestSurroundAdd(t *testing.T) {
	f := newFixture(t, "hello world", host.Position{Line: 0, Col: 2})
	target, delim, st := ParseSurroundAdd(key.MustTokenize("ysiw)"))
	if st != keyparse.StatusMatch {
		t.Fatalf("parse: %v", st)
	}
	if err := f.eng.SurroundAdd(context.Background(), f.view, f.mctx, target, delim); err != nil {
		t.Fatal(err)
	}
	if got := f.text(); got != "(hello) world" {
		t.Errorf("document = %q", got)
	}
}

func TestSurroundAddLine(t *testing.T) {
	f := newFixture(t, "first\nsecond", host.Position{Line: 1, Col: 2})
	target := Target{Args: Args{Line: true}}
	if err := f.eng.SurroundAdd(context.Background(), f.view, f.mctx, target, '"'); err != nil {
		t.Fatal(err)
	}
	if got := f.text(); got != "first\n\"second\"" {
		t.Errorf("document = %q", got)
	}
}

func TestSurroundDelete(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		pos    host.Position
		target rune
		want   string
	}{
		{"parens", "f(arg)", host.Position{Line: 0, Col: 3}, '(', "farg"},
		{"close alias", "f(arg)", host.Position{Line: 0, Col: 3}, ')', "farg"},
		{"quotes", `say "hi" now`, host.Position{Line: 0, Col: 6}, '"', "say hi now"},
		{"absent pair is noop", "plain", host.Position{Line: 0, Col: 2}, '(', "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.text, tt.pos)
			if err := f.eng.SurroundDelete(context.Background(), f.view, tt.target); err != nil {
				t.Fatal(err)
			}
			if got := f.text(); got != tt.want {
				t.Errorf("document = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSurroundChange(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pos      host.Position
		from, to rune
		want     string
	}{
		{"parens to brackets", "(hi)", host.Position{Line: 0, Col: 1}, '(', ']', "[hi]"},
		{"quotes to braces", `"hi"`, host.Position{Line: 0, Col: 1}, '"', '{', "{hi}"},
		{"brackets to quotes", "[hi]", host.Position{Line: 0, Col: 2}, '[', '\'', "'hi'"},
		{"absent pair is noop", "hi", host.Position{Line: 0, Col: 1}, '(', ')', "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.text, tt.pos)
			if err := f.eng.SurroundChange(context.Background(), f.view, tt.from, tt.to); err != nil {
				t.Fatal(err)
			}
			if got := f.text(); got != tt.want {
				t.Errorf("document = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSurroundWrapSelection(t *testing.T) {
	f := newFixture(t, "pick me up", host.Position{})
	rng := host.Range{Start: host.Position{Line: 0, Col: 5}, End: host.Position{Line: 0, Col: 7}}

	if err := f.eng.SurroundWrap(context.Background(), f.view, rng, 'b'); err != nil {
		t.Fatal(err)
	}
	if got := f.text(); got != "pick (me) up" {
		t.Errorf("document = %q", got)
	}
}

func TestSurroundParsers(t *testing.T) {
	cs := SurroundChangeParser()
	res := cs.Feed(key.MustTokenize("cs(]"))
	if res.Status != keyparse.StatusMatch {
		t.Fatalf("cs(]: %v", res.Status)
	}
	if res.Capture("from") != "(" || res.Capture("to") != "]" {
		t.Errorf("captures = %v", res.Captures)
	}
	if st := cs.Feed(key.MustTokenize("cs")).Status; st != keyparse.StatusNeedsMoreKey {
		t.Errorf("cs = %v", st)
	}

	ds := SurroundDeleteParser()
	res = ds.Feed(key.MustTokenize("ds\""))
	if res.Status != keyparse.StatusMatch || res.Capture("char") != "\"" {
		t.Errorf("ds\" = %v %v", res.Status, res.Captures)
	}
}
