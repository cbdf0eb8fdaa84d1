// Package mapper implements the map stage of a Hadoop streaming job over
// comma-separated weather rows: every accepted row contributes its trailing
// fields as key/count pairs for the reducer to sum.
package mapper

import "strings"

// KV is one intermediate pair handed to the reducer.
type KV struct {
	Key   string
	Value string
}

type rowKind int

const (
	dataRow rowKind = iota
	headerRow
	shortRow
)

func (k rowKind) String() string {
	switch k {
	case headerRow:
		return "header"
	case shortRow:
		return "short"
	default:
		return "data"
	}
}

type Mapper struct {
	cfg Config
}

func New(cfg Config) *Mapper {
	cfg.WithDefaults()
	return &Mapper{cfg: cfg}
}

var defaultMapper = New(Config{})

// MapLine maps a single input line with the default configuration.
func MapLine(line string) []KV {
	return defaultMapper.MapLine(line)
}

// MapLine returns the pairs emitted for line, in field order. Header and
// short rows yield nil.
func (m *Mapper) MapLine(line string) []KV {
	kvs, _ := m.mapLine(line)
	return kvs
}

func (m *Mapper) mapLine(line string) ([]KV, rowKind) {
	fields := strings.Split(strings.Trim(line, LineCutset), m.cfg.Separator)
	if kind := m.classify(fields); kind != dataRow {
		return nil, kind
	}

	tail := fields
	if len(tail) > m.cfg.LastN {
		tail = tail[len(tail)-m.cfg.LastN:]
	}
	var out []KV
	for _, f := range tail {
		// fields are not trimmed individually
		if len(f) == 0 {
			continue
		}
		out = append(out, KV{Key: f, Value: CountValue})
	}
	return out, dataRow
}

func (m *Mapper) classify(fields []string) rowKind {
	if fields[0] == m.cfg.Sentinel {
		return headerRow
	}
	if len(fields) <= m.cfg.MinFields {
		return shortRow
	}
	return dataRow
}
