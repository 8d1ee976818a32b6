// Package ir defines the language-neutral intermediate representation that
// every Extractor populates and every Formatter renders. It has no behavior
// beyond construction and field access: formatters read it, they never
// mutate it.
package ir

// Visibility is the access level of a unit, normalized across languages.
type Visibility int

const (
	// Private means the unit is not reachable outside its declaring scope.
	Private Visibility = iota
	// Public means the unit is part of the package's/module's public surface.
	Public
	// Protected is used by languages that distinguish it from private
	// (C++, some TypeScript class members).
	Protected
	// Restricted is a visibility narrower than Public but not a plain
	// Private/Protected — it carries the raw source-level qualifier, e.g.
	// Rust's "crate" in pub(crate).
	Restricted
)

// RestrictedScope holds the raw qualifier text for a Restricted visibility,
// e.g. "crate" or "super" for Rust's pub(crate)/pub(super).
type RestrictedScope struct {
	Visibility
	Scope string
}

// DeclareKind tags what an import-like statement actually is in its source
// language.
type DeclareKind int

const (
	// Import is a plain import statement (Python, TypeScript, Go). C/C++
	// includes are Other with RawKind "include".
	Import DeclareKind = iota
	// Use is a Rust-style use declaration.
	Use
	// Mod is a Rust module declaration without a body (mod x;).
	Mod
	// Other is any import-like statement that doesn't fit the above, with
	// the raw source-level keyword retained.
	Other
)

// DeclareStatement is a single import-like statement attached to the file
// or module that contains it.
type DeclareStatement struct {
	// Source is the verbatim source text of the statement.
	Source string
	Kind   DeclareKind
	// RawKind holds the source keyword when Kind is Other (e.g. "include").
	RawKind string
}

// FunctionUnit is a single function or method definition.
type FunctionUnit struct {
	Name       string
	Visibility Visibility
	// RestrictedScope is set only when Visibility == Restricted.
	RestrictedScope string
	Attributes      []string
	Documentation   string
	// Signature is the textual header up to and including the return-type
	// clause, excluding the body.
	Signature string
	// Body is the remainder after the signature. Absent (empty string with
	// HasBody == false) for signature-only declarations (abstract methods,
	// interface members, forward declarations).
	Body    string
	HasBody bool
	// Source is the verbatim byte span of the whole unit: Signature+Body
	// plus any inter-token whitespace present in the original.
	Source string
}

// StructUnit is a struct, class, or (for languages without a separate
// interface concept) an abstract base class.
type StructUnit struct {
	Name            string
	Visibility      Visibility
	RestrictedScope string
	Attributes      []string
	Documentation   string
	Methods         []FunctionUnit
	Source          string
}

// TraitUnit is a trait, interface, or abstract-class equivalent.
type TraitUnit struct {
	Name            string
	Visibility      Visibility
	RestrictedScope string
	Attributes      []string
	Documentation   string
	Methods         []FunctionUnit
	Source          string
}

// ImplUnit is a Rust-style impl block: a set of methods attached to a type,
// optionally implementing a trait. Languages without this concept never
// populate ImplUnit (their methods live directly on StructUnit).
type ImplUnit struct {
	// TypeName is the type the impl block is for.
	TypeName string
	// TraitName is the trait being implemented, empty for an inherent impl.
	TraitName     string
	Attributes    []string
	Documentation string
	Methods       []FunctionUnit
	Source        string
}

// ModuleUnit is a nested namespace/module/mod block with its own body.
type ModuleUnit struct {
	Name            string
	Visibility      Visibility
	RestrictedScope string
	Attributes      []string
	Documentation   string
	Declares        []DeclareStatement
	Functions       []FunctionUnit
	Structs         []StructUnit
	Traits          []TraitUnit
	Impls           []ImplUnit
	Submodules      []ModuleUnit
	Source          string
}

// FileUnit is the root of one file's IR. path is the only required field;
// everything else may be empty/nil for a file with no corresponding
// constructs.
type FileUnit struct {
	Path string
	// Document is a file-level documentation block (e.g. a module-level
	// doc comment at the very top of the file).
	Document  string
	Declares  []DeclareStatement
	Modules   []ModuleUnit
	Functions []FunctionUnit
	Structs   []StructUnit
	Traits    []TraitUnit
	Impls     []ImplUnit
	// Source is the whole original file content (after CRLF/BOM
	// normalization), always present.
	Source string
}
