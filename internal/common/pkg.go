package common

import (
	"path"
	"strings"
)

// PkgAlias guesses the name a package is referred to by from its import
// path: the last element without a major version suffix ("/v2", ".v3") or a
// "go-" prefix. It returns "" for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if dir := path.Dir(pkgPath); dir != "." && isMajorVersion(base) {
		base = path.Base(dir)
	}

	if i := strings.LastIndex(base, ".v"); i > 0 && isDigits(base[i+2:]) {
		base = base[:i]
	}

	base = strings.TrimPrefix(base, "go-")

	return strings.NewReplacer("-", "_", ".", "_").Replace(base)
}

func isMajorVersion(elem string) bool {
	return len(elem) > 1 && elem[0] == 'v' && isDigits(elem[1:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
