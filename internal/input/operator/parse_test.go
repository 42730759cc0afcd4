package operator

import (
	"testing"

	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keyparse"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		status   keyparse.Status
		args     Args
	}{
		{"bare operator waits", "d", keyparse.StatusNeedsMoreKey, Args{}},
		{"doubled key is linewise", "dd", keyparse.StatusMatch, Args{Line: true}},
		{"motion target", "dw", keyparse.StatusMatch, Args{Motion: "wordForward"}},
		{"multi-key motion forming", "dg", keyparse.StatusNeedsMoreKey, Args{}},
		{"multi-key motion target", "dgg", keyparse.StatusMatch, Args{Motion: "documentStart"}},
		{"pattern motion forming", "df", keyparse.StatusNeedsMoreKey, Args{}},
		{"pattern motion target", "dfx", keyparse.StatusMatch, Args{Motion: "findChar"}},
		{"object selector forming", "di", keyparse.StatusNeedsMoreKey, Args{}},
		{"object target", "diw", keyparse.StatusMatch, Args{TextObject: "iw"}},
		{"around object target", "da(", keyparse.StatusMatch, Args{TextObject: "a("}},
		{"unknown object", "dix", keyparse.StatusNoMatch, Args{}},
		{"unknown target", "dz", keyparse.StatusNoMatch, Args{}},
		{"wrong operator key", "xw", keyparse.StatusNoMatch, Args{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, st := ParseTarget("d", key.MustTokenize(tt.notation))
			if st != tt.status {
				t.Fatalf("status = %v, want %v", st, tt.status)
			}
			if target.Args != tt.args {
				t.Errorf("args = %+v, want %+v", target.Args, tt.args)
			}
		})
	}
}

func TestParseTargetEmpty(t *testing.T) {
	if _, st := ParseTarget("d", nil); st != keyparse.StatusNoMatch {
		t.Errorf("empty sequence = %v, want noMatch", st)
	}
}

func TestParseTargetKeepsCapture(t *testing.T) {
	target, st := ParseTarget("d", key.MustTokenize("dfx"))
	if st != keyparse.StatusMatch {
		t.Fatalf("status = %v", st)
	}
	if got := target.Res.Capture("char"); got != "x" {
		t.Errorf("captured %q, want x", got)
	}
}

func TestArgsValid(t *testing.T) {
	tests := []struct {
		name string
		args Args
		want bool
	}{
		{"line", Args{Line: true}, true},
		{"motion", Args{Motion: "left"}, true},
		{"object", Args{TextObject: "iw"}, true},
		{"empty", Args{}, false},
		{"two set", Args{Line: true, Motion: "left"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
