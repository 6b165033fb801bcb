// Package gen implements the Go-shaped translation of spec §4.5's
// compile-time binding surface: given a declared matcher name, package and
// needle-set literal, it builds the ShuftiTable (via package table) and
// renders a ready-to-compile Go source file that materialises the table as
// a package-level variable plus the derived SET/NEEDLE_COUNT constants and
// wrapper functions.
//
// This is the "derive macro" translated into a source generator — the
// convention `stringer`, `mockgen` and similar tools use, since Go has no
// attribute/derive-macro facility of its own.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/gomatch/shufti/table"
)

// Config describes one matcher declaration: the Go equivalent of
// `#[derive(ShuftiMatcher)] #[shufti(set = "...")] struct Name;`.
type Config struct {
	// Name is the exported identifier prefix for the generated symbols
	// (NameSet, NameNeedleCount, NameMatch16, NameFindFirst). Must be a
	// valid, exported Go identifier.
	Name string

	// Package is the package clause of the emitted file.
	Package string

	// Set is the raw needle-set bytes. Must be non-empty with no duplicate
	// bytes. Generate leaves this validation to table.Build and wraps any
	// error it returns with the offending matcher name (spec §6/§7).
	Set []byte
}

// Generate builds cfg's table and renders the corresponding Go source file,
// gofmt'd. It returns an error identifying cfg.Name if the set is malformed
// or, for sets larger than 8 bytes, if BuildSlow's column packing is
// exhausted.
func Generate(cfg Config) ([]byte, error) {
	if err := validateIdentifier(cfg.Name); err != nil {
		return nil, fmt.Errorf("shufti: matcher %q: %w", cfg.Name, err)
	}

	tbl, err := table.Build(cfg.Set)
	if err != nil {
		return nil, fmt.Errorf("shufti: matcher %q: %w", cfg.Name, err)
	}

	data := templateData{
		Package:     cfg.Package,
		Name:        cfg.Name,
		Set:         string(cfg.Set),
		NeedleCount: len(cfg.Set),
		LowTab:      tbl.LowTab,
		HighTab:     tbl.HighTab,
		BitMask:     tbl.BitMask,
	}

	var buf bytes.Buffer
	if err := matcherTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("shufti: matcher %q: rendering template: %w", cfg.Name, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("shufti: matcher %q: formatting generated source: %w", cfg.Name, err)
	}
	return formatted, nil
}

func validateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("empty matcher name")
	}
	r, size := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(r) {
		return fmt.Errorf("matcher name %q must start with an uppercase letter to be exported", name)
	}
	for _, r := range name[size:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("matcher name %q contains a non-identifier character %q", name, r)
		}
	}
	return nil
}

type templateData struct {
	Package     string
	Name        string
	Set         string
	NeedleCount int
	LowTab      [16]byte
	HighTab     [16]byte
	BitMask     byte
}

var matcherTemplate = template.Must(template.New("matcher").Funcs(template.FuncMap{
	"bytelit": formatByteArray,
	"unexported": func(name string) string {
		r, size := utf8.DecodeRuneInString(name)
		return string(unicode.ToLower(r)) + name[size:]
	},
}).Parse(matcherTemplateSrc))

func formatByteArray(b [16]byte) string {
	var buf bytes.Buffer
	buf.WriteString("[16]byte{")
	for i, v := range b {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "0x%02x", v)
	}
	buf.WriteString("}")
	return buf.String()
}

const matcherTemplateSrc = `// Code generated by shuftigen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/gomatch/shufti"
	"github.com/gomatch/shufti/table"
)

// {{.Name}}Set is the original needle-set literal this matcher was
// generated from.
const {{.Name}}Set = {{printf "%q" .Set}}

// {{.Name}}NeedleCount is the number of distinct bytes in {{.Name}}Set.
const {{.Name}}NeedleCount = {{.NeedleCount}}

var {{unexported .Name}}Table = table.ShuftiTable{
	LowTab:  {{bytelit .LowTab}},
	HighTab: {{bytelit .HighTab}},
	BitMask: 0x{{printf "%02x" .BitMask}},
}

var {{.Name}}scanner = shufti.New({{unexported .Name}}Table, {{.Name}}Set)

// {{.Name}}Match16 tests exactly 16 bytes against {{.Name}}Set. Bit i of the
// returned mask is set iff chunk[i] is a member.
func {{.Name}}Match16(chunk *[16]byte) uint16 {
	return {{.Name}}scanner.Match16(chunk)
}

// {{.Name}}FindFirst returns the offset of the first byte in haystack that
// belongs to {{.Name}}Set, or (0, false) if none does.
func {{.Name}}FindFirst(haystack []byte) (int, bool) {
	return {{.Name}}scanner.FindFirst(haystack)
}

// {{.Name}}Matcher is a zero-size marker type implementing shufti.Matcher
// for {{.Name}}Set, for callers that want to pass matchers through an
// interface rather than calling the generated free functions directly.
type {{.Name}}Matcher struct{}

func (m {{.Name}}Matcher) Set() string                  { return {{.Name}}Set }
func (m {{.Name}}Matcher) NeedleCount() int              { return {{.Name}}NeedleCount }
func (m {{.Name}}Matcher) Table() table.ShuftiTable      { return {{unexported .Name}}Table }
func (m {{.Name}}Matcher) Match16(chunk *[16]byte) uint16 { return {{.Name}}Match16(chunk) }
func (m {{.Name}}Matcher) FindFirst(haystack []byte) (int, bool) { return {{.Name}}FindFirst(haystack) }
`
