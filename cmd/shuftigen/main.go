// Command shuftigen generates a shufti matcher source file from a needle-set
// literal, playing the role the original's `#[derive(ShuftiMatcher)]`
// attribute macro played: a declarative "name + set" binding materialised
// into baked lookup tables, but realised through Go's go:generate convention
// instead of compile-time macro expansion.
//
// Usage:
//
//	//go:generate shuftigen -name Whitespace -set "\\t\\r\\n" -pkg whitespace -out whitespace_shufti.go
//
// -set accepts Go string-literal escaping (e.g. \t, \r, \n, \x00) the same
// way the original's `set = "..."` attribute value did. go generate itself
// evaluates double-quoted arguments as Go strings before running the
// command, so the backslashes are doubled in a go:generate line; a raw
// newline reaching -set is rejected as an invalid literal.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/gomatch/shufti/gen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("shuftigen", flag.ContinueOnError)
	name := fs.String("name", "", "exported identifier prefix for the generated matcher (required)")
	pkg := fs.String("pkg", "", "package clause of the generated file (required)")
	set := fs.String("set", "", "needle-set literal, Go-escaped (required)")
	out := fs.String("out", "", "output file path (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *pkg == "" || *set == "" || *out == "" {
		fs.Usage()
		return fmt.Errorf("shuftigen: -name, -pkg, -set and -out are all required")
	}

	unquoted, err := unescapeSet(*set)
	if err != nil {
		return fmt.Errorf("shuftigen: invalid -set literal: %w", err)
	}

	src, err := gen.Generate(gen.Config{
		Name:    *name,
		Package: *pkg,
		Set:     []byte(unquoted),
	})
	if err != nil {
		return err
	}

	return os.WriteFile(*out, src, 0o644)
}

// unescapeSet interprets set the way a Go double-quoted string literal
// would, so callers can write `-set "\t\r\n"` exactly as the original
// `set = "\t\r\n"` attribute value.
func unescapeSet(set string) (string, error) {
	return strconv.Unquote(`"` + set + `"`)
}
