package wire

// Option applies a configuration option to the Tokenizer.
type Option func(*Tokenizer)

// WithFieldSeparator overrides the separator between fields within a record.
func WithFieldSeparator(sep string) Option {
	return func(t *Tokenizer) {
		if sep != "" {
			t.fieldSep = sep
		}
	}
}

// WithKVSeparator overrides the separator between a field's key and value.
func WithKVSeparator(sep string) Option {
	return func(t *Tokenizer) {
		if sep != "" {
			t.kvSep = sep
		}
	}
}

// WithPageFlagKey configures the document-level pagination flag key. When set,
// a field with this key and value "1" raises the hasMore side channel instead
// of appearing in the record's mapping.
func WithPageFlagKey(key string) Option {
	return func(t *Tokenizer) {
		t.pageFlagKey = key
	}
}
