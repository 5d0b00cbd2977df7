package ll

import "encoding/json"

// tagMask is the high bit of a uint64: set for a Terminal, clear for a
// Nonterminal.
const tagMask uint64 = 1 << 63

// EpsilonRuleCode is the reserved ParseTable value meaning "match ε,
// push nothing" — the maximum representable uint64.
const EpsilonRuleCode uint64 = ^uint64(0)

// EndSymbolCode is the reserved terminal code marking end-of-input: the
// maximum representable uint64 with its high bit cleared.
const EndSymbolCode uint64 = EpsilonRuleCode &^ tagMask

// Symbol is a tagged terminal/nonterminal code, encoded as a single
// integer whose high bit is the tag.
type Symbol struct {
	code uint64
}

// Terminal builds a Symbol tagged as a terminal with the given code.
func Terminal(code uint64) Symbol { return Symbol{code: code | tagMask} }

// Nonterminal builds a Symbol tagged as a nonterminal with the given code.
func Nonterminal(code uint64) Symbol { return Symbol{code: code} }

// IsTerminal reports whether s is tagged as a terminal.
func (s Symbol) IsTerminal() bool { return s.code&tagMask != 0 }

// Code returns s's code with the tag bit stripped.
func (s Symbol) Code() uint64 { return s.code &^ tagMask }

// MarshalJSON encodes Symbol as its raw tagged integer: high-bit-set
// means terminal, otherwise nonterminal.
func (s Symbol) MarshalJSON() ([]byte, error) { return json.Marshal(s.code) }

// UnmarshalJSON decodes Symbol from its raw tagged integer.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var v uint64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.code = v
	return nil
}

// MarshalYAML encodes Symbol as its raw tagged integer, for the
// human-readable table dump.
func (s Symbol) MarshalYAML() (interface{}, error) {
	return s.code, nil
}

// UnmarshalYAML decodes Symbol from its raw tagged integer.
func (s *Symbol) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v uint64
	if err := unmarshal(&v); err != nil {
		return err
	}
	s.code = v
	return nil
}
