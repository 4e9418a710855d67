package main

import (
	"os"
	"path/filepath"
	"strings"

	"cardpick/internal/cli"
)

func isCardFile(s string) bool {
	s = strings.TrimSpace(s)
	switch strings.ToLower(filepath.Ext(s)) {
	case ".vcf", ".vcard":
		return len(s) > len(filepath.Ext(s))
	}
	return false
}

func rewriteDirectOpenArgs(argv []string) []string {
	// Convenience: `cardpick <file.vcf>` works like `cardpick open <file.vcf>`.
	//
	// Cobra treats the first non-flag token as a subcommand; argv is rewritten before parsing.
	// Persistent flags may come first (e.g. `cardpick --debug-log x.log contacts.vcf`), so we
	// look for the first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format":    true,
		"--debug-log": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	insertOpen := func(at int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:at]...)
		out = append(out, "open")
		out = append(out, argv[at:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// `cardpick -- -odd-name.vcf` becomes `cardpick open -- -odd-name.vcf`.
			if i+1 < len(argv) && isCardFile(argv[i+1]) {
				return insertOpen(i)
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			// --flag=value form
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if isCardFile(a) {
			return insertOpen(i)
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectOpenArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
