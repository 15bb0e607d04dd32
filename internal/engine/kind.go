package engine

import (
	"encoding/json"
	"fmt"
)

// CreatureKind identifies the 3 creature types.
type CreatureKind int

const (
	KindVampire CreatureKind = iota + 1
	KindWerewolf
	KindGhost
)

var kindNames = map[CreatureKind]string{
	KindVampire:  "vampire",
	KindWerewolf: "werewolf",
	KindGhost:    "ghost",
}

func (k CreatureKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind converts a wire-format kind name to a CreatureKind.
func ParseKind(s string) (CreatureKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown creature kind %q", s)
}

// MarshalJSON emits the wire-format kind name.
func (k CreatureKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *CreatureKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Beats reports whether kind a defeats kind b. The dominance cycle is
// vampire > werewolf > ghost > vampire; a kind never beats itself.
func Beats(a, b CreatureKind) bool {
	switch a {
	case KindVampire:
		return b == KindWerewolf
	case KindWerewolf:
		return b == KindGhost
	case KindGhost:
		return b == KindVampire
	}
	return false
}

// AllKinds returns the 3 kinds in declaration order.
func AllKinds() []CreatureKind {
	return []CreatureKind{KindVampire, KindWerewolf, KindGhost}
}
