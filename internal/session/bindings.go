package session

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Bindings returns the key-to-command table as JSON, one record per
// action that binds a fixed key form. Hosts with declarative keymaps
// generate their static tables from this; actions with computed
// parsers (the motions) dispatch through the type intercept instead.
func (s *Session) Bindings() string {
	out := `{"bindings":[]}`
	i := 0
	for _, a := range s.acts {
		if a.keys == "" {
			continue
		}
		base := fmt.Sprintf("bindings.%d", i)
		out, _ = sjson.Set(out, base+".keys", a.keys)
		out, _ = sjson.Set(out, base+".command", "modalkit."+a.name)
		modes := make([]string, len(a.modes))
		for j, m := range a.modes {
			modes[j] = m.String()
		}
		out, _ = sjson.Set(out, base+".modes", modes)
		i++
	}
	return out
}
