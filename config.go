package mal

// Options configures a fresh root Environment. The interpreter's
// knobs are a small fixed set known at compile time, so a plain
// struct is enough; there's no need for a stringly-keyed config map.
type Options struct {
	// HostLanguage is bound to *host-language* in the root env.
	HostLanguage string

	// Argv becomes *ARGV*, a List of Str built from the CLI tail.
	Argv []string
}

// NewOptions returns the interpreter's defaults: host language "go",
// empty argv.
func NewOptions() Options {
	return Options{
		HostLanguage: "go",
		Argv:         nil,
	}
}
