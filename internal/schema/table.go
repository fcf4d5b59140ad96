package schema

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brindle/wingnrp/internal/protocol"
)

// Table is the loaded name<->id mapping for one device generation. The
// zero value is an empty table.
type Table struct {
	byName map[string]protocol.NodeID
	byID   map[protocol.NodeID]string
}

// NameToID looks up the node id for a dotted path such as
// "ch.1.fader.level". ok is false if path is unknown.
func (t *Table) NameToID(path string) (protocol.NodeID, bool) {
	id, ok := t.byName[path]
	return id, ok
}

// IDToName looks up the dotted path for a node id. ok is false if the
// id is unknown to this table.
func (t *Table) IDToName(id protocol.NodeID) (string, bool) {
	name, ok := t.byID[id]
	return name, ok
}

// Len reports the number of entries loaded.
func (t *Table) Len() int {
	return len(t.byName)
}

// Load reads a generated name<->id table: one "path,id" pair per line,
// blank lines and lines starting with "#" ignored. The table content is
// a build-time artifact produced elsewhere; Load only understands the
// wire format, not any particular device's actual parameter names.
func Load(r io.Reader) (*Table, error) {
	t := &Table{
		byName: make(map[string]protocol.NodeID),
		byID:   make(map[protocol.NodeID]string),
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		name, idField, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("schema: line %d: expected \"path,id\"", line)
		}
		name = strings.TrimSpace(name)
		raw, err := strconv.ParseUint(strings.TrimSpace(idField), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("schema: line %d: invalid id: %w", line, err)
		}
		id := protocol.NodeID(raw)
		t.byName[name] = id
		t.byID[id] = name
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("schema: read failed: %w", err)
	}
	return t, nil
}
