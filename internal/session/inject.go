package session

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/modalkit/internal/input/key"
)

// InjectKeys enqueues synthetic keystrokes for macro-like replay. The
// payload may be a key sequence, a token list, or a JSON array (bare
// or under a "keys" field). Anything else is rejected with a logged
// diagnostic and otherwise ignored.
func (s *Session) InjectKeys(ctx context.Context, args any) error {
	seq, err := decodeKeys(args)
	if err != nil {
		s.log.Warn("injectKeys rejected: %v", err)
		return err
	}
	for _, k := range seq {
		s.disp.HandleKey(ctx, k)
	}
	return nil
}

// decodeKeys normalizes the accepted payload shapes into a sequence.
func decodeKeys(args any) (key.Sequence, error) {
	switch v := args.(type) {
	case key.Sequence:
		return v, nil

	case []string:
		return key.FromStrings(v)

	case []any:
		tokens := make([]string, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, not a string", i, item)
			}
			tokens[i] = str
		}
		return key.FromStrings(tokens)

	case string:
		parsed := gjson.Parse(v)
		if keys := parsed.Get("keys"); keys.IsArray() {
			parsed = keys
		}
		if !parsed.IsArray() {
			return nil, fmt.Errorf("payload %q is not a key list", v)
		}
		var tokens []string
		for _, item := range parsed.Array() {
			if item.Type != gjson.String {
				return nil, fmt.Errorf("payload %q holds a non-string key", v)
			}
			tokens = append(tokens, item.String())
		}
		return key.FromStrings(tokens)

	default:
		return nil, fmt.Errorf("payload is %T, not a key list", args)
	}
}
