package table

import (
	"path/filepath"
	"strings"
)

// DeriveOutputPath inserts suffix between the file stem and its extension,
// keeping the directory: "data/results.tsv" becomes "data/results-sorted.tsv"
// and "results" becomes "results-sorted".
//
// Only the last extension counts ("a.tar.gz" → "a.tar-sorted.gz"). Names
// whose only dot is the first character (".hidden") or the last ("name.")
// have no extension.
func DeriveOutputPath(path, suffix string) string {
	dir, base := filepath.Split(path)

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" || ext == "." {
		stem, ext = base, ""
	}

	return dir + stem + suffix + ext
}
