package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// decodeJSON reads a config.json document. Top-level fields are looked up in
// a map so a repeated field keeps its last value; patterns are walked token
// by token to keep their order.
func decodeJSON(b []byte) (FileConfig, error) {
	var cfg FileConfig
	var top map[string]json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil {
		return cfg, fmt.Errorf("malformed JSON: %w", err)
	}
	if top == nil {
		return cfg, errors.New("configuration must be a JSON object")
	}
	if raw, ok := top["patterns"]; ok && !isNull(raw) {
		pl, err := decodePatterns(raw)
		if err != nil {
			return cfg, err
		}
		cfg.Patterns = pl
	}
	if raw, ok := top["ignored_paths"]; ok && !isNull(raw) {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return cfg, errors.New("ignored_paths must be a list of names")
		}
		for _, item := range items {
			var name string
			if isNull(item) || json.Unmarshal(item, &name) != nil {
				return cfg, fmt.Errorf("ignored_paths entries must be strings, got %s", item)
			}
			cfg.IgnoredPaths = append(cfg.IgnoredPaths, name)
		}
	}
	return cfg, nil
}

func decodePatterns(raw json.RawMessage) (PatternList, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("patterns must be an object of name to expression")
	}
	var out PatternList
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		var expr string
		if isNull(v) || json.Unmarshal(v, &expr) != nil {
			return nil, fmt.Errorf("pattern %q must be a string", name)
		}
		out = out.set(name, expr, index)
	}
	return out, nil
}
