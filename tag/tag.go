// Package tag interns part-of-speech tags as small integers backed by a
// bidirectional string table, so that lattice and decoder code can compare
// tags by value instead of hashing strings on every edge.
package tag

// ID is an interned tag identifier. The zero value is reserved for BOS.
type ID uint16

// Reserved ids populated by every Table returned from NewTable.
const (
	BOS ID = iota
	EOS
	Unk
)

const (
	bosName = "BOS"
	eosName = "EOS"
	unkName = "Unk"
)

// Table is the mapping between tag names and their interned ids. The zero
// Table is not usable; construct one with NewTable.
type Table struct {
	id2str []string
	str2id map[string]ID
}

// NewTable returns a Table with BOS, EOS, and Unk pre-registered at their
// fixed ids.
func NewTable() *Table {
	t := &Table{
		id2str: []string{BOS: bosName, EOS: eosName, Unk: unkName},
		str2id: map[string]ID{bosName: BOS, eosName: EOS, unkName: Unk},
	}
	return t
}

// Bound returns the largest id registered, plus one.
func (t *Table) Bound() ID { return ID(len(t.id2str)) }

// IDOrAdd returns the id for name, registering it if it has not been seen
// before. Not safe for concurrent use; tables are built once at model-load
// time and treated as read-only afterward.
func (t *Table) IDOrAdd(name string) ID {
	if id, ok := t.str2id[name]; ok {
		return id
	}
	id := t.Bound()
	t.id2str = append(t.id2str, name)
	t.str2id[name] = id
	return id
}

// ID looks up the id of name. ok is false if name was never registered.
func (t *Table) ID(name string) (ID, bool) {
	id, ok := t.str2id[name]
	return id, ok
}

// Name returns the string registered for id. Only safe for ids returned by
// IDOrAdd/ID on this same table, or the reserved BOS/EOS/Unk constants.
func (t *Table) Name(id ID) string {
	if int(id) >= len(t.id2str) {
		return ""
	}
	return t.id2str[id]
}
