package bank

import (
	"os"
	"path/filepath"
)

// manifestCandidates is the fixed, ordered list of package-manifest file
// names the Orchestrator searches for (spec §4.5 step 2). Order is the
// tie-break: the first name present at a given directory level wins.
var manifestCandidates = []string{
	"Cargo.toml",
	"pyproject.toml",
	"setup.py",
	"requirements.txt",
	"package.json",
	"CMakeLists.txt",
	"Makefile",
}

// manifestFenceTags maps a manifest file name to the Markdown fence tag its
// contents should be embedded under.
var manifestFenceTags = map[string]string{
	"Cargo.toml":        "toml",
	"pyproject.toml":    "toml",
	"setup.py":          "python",
	"requirements.txt":  "text",
	"package.json":      "json",
	"CMakeLists.txt":    "cmake",
	"Makefile":          "make",
}

// manifest is a located package manifest: its fence tag and verbatim text.
type manifest struct {
	FenceTag string
	Contents string
}

// findManifest searches root and up to three parent directories, in that
// order, for the first manifestCandidates match at each level — spec §4.5
// step 2, with the Open Question "what if a directory holds more than one
// candidate" resolved as "first match in manifestCandidates' fixed order".
func findManifest(root string) (*manifest, bool, error) {
	dir := root
	for level := 0; level <= 3; level++ {
		for _, name := range manifestCandidates {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err == nil {
				return &manifest{FenceTag: manifestFenceTags[name], Contents: string(data)}, true, nil
			}
			if !os.IsNotExist(err) {
				return nil, false, err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil, false, nil
}
