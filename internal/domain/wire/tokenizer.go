// Package wire splits the legacy proxy's ad hoc key/value text bodies into
// per-record field mappings. It knows nothing about the meaning of individual
// fields; that belongs to the decoders on top of it.
package wire

import "strings"

// pageFlagSetValue is the only value that raises the pagination flag.
const pageFlagSetValue = "1"

// Fields is the key/value mapping of a single tokenized record.
type Fields map[string]string

// Get returns the value for key, or the empty string when the field is absent.
func (f Fields) Get(key string) string {
	return f[key]
}

// Tokenizer splits a raw body on a literal record marker and breaks each
// record into fields. The zero value is not usable; construct with New.
type Tokenizer struct {
	recordMarker string
	fieldSep     string
	kvSep        string
	pageFlagKey  string
}

// New creates a Tokenizer for the given record marker. The field separator
// defaults to "&" and the key/value separator to "="; no pagination flag key
// is configured unless WithPageFlagKey is supplied.
func New(recordMarker string, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		recordMarker: recordMarker,
		fieldSep:     "&",
		kvSep:        "=",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits raw into ordered per-record field mappings. The boolean
// reports whether the configured pagination flag key carried the value "1"
// anywhere in the document; the flag field itself never appears in a record's
// mapping. Tokenize is pure and never fails.
func (t *Tokenizer) Tokenize(raw string) ([]Fields, bool) {
	records := []Fields{}
	hasMore := false

	for _, chunk := range t.chunks(raw) {
		fields := Fields{}
		for _, field := range strings.Split(chunk, t.fieldSep) {
			kv := strings.SplitN(field, t.kvSep, 2)
			key := kv[0]
			if key == "" {
				continue
			}
			// SplitN keeps any further separator occurrences inside the value.
			value := ""
			if len(kv) == 2 {
				value = kv[1]
			}
			if t.pageFlagKey != "" && key == t.pageFlagKey {
				// Document-scoped flag: sticky once set, never a record field.
				if value == pageFlagSetValue {
					hasMore = true
				}
				continue
			}
			fields[key] = value
		}
		if len(fields) == 0 {
			continue
		}
		records = append(records, fields)
	}

	return records, hasMore
}

// chunks splits raw on the record marker and re-prefixes each fragment with
// the marker so the marker's key parses as an ordinary field. The fragment
// before the first marker is dropped unless it already begins with the
// marker's key literal; blank fragments are dropped entirely.
func (t *Tokenizer) chunks(raw string) []string {
	parts := strings.Split(raw, t.recordMarker)
	markerKey := strings.TrimSuffix(t.recordMarker, t.kvSep)

	out := make([]string, 0, len(parts))
	if strings.HasPrefix(parts[0], markerKey) && strings.TrimSpace(parts[0]) != "" {
		out = append(out, parts[0])
	}
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, t.recordMarker+p)
	}
	return out
}
