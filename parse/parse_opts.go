package parse

type parseOpts struct {
	strict   bool
	filename string
}

type ParseOption func(*parseOpts)

// ParseStrict rejects identifier records without a type and records whose
// level is more than one deeper than the preceding record.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// ParseFilename names the input in error messages.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
