package config

const SourceFileExt = ".fe"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".fe", ".ferrite"}

// Built-in scalar type names. Paths resolving to one of these are
// builtin-type resolutions, which the generic-target classifier rejects.
var BuiltinTypeNames = map[string]bool{
	"Int":    true,
	"Float":  true,
	"Bool":   true,
	"String": true,
}

// SelfTypeName is the `Self` type path usable inside impl blocks.
const SelfTypeName = "Self"
