package ftrackertest

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

var (
	errUsageFound    = errors.New("usage found")
	errUsageNotFound = errors.New("usage not found")
)

// usesKnownPackage checks if any non-test file in given rootdir imports at
// least one of given knownPackages or their subpackages
func usesKnownPackage(rootdir string, knownPackages []string) error {
	err := filepath.WalkDir(rootdir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// skip vendor, hidden and underscored directories, the go tool ignores them too
			name := d.Name()
			if path != rootdir && (name == "vendor" || name == "testdata" ||
				strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}

		// skip test files or non-Go files
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}

		importPath, err := importsKnownPackage(path, knownPackages)
		if err != nil {
			return fmt.Errorf("cannot inspect file %s: %w", path, err)
		}
		if importPath != "" {
			return fmt.Errorf("%s imports %s: %w", path, importPath, errUsageFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return errUsageNotFound
}

// importsKnownPackage returns the first import of filepath matching knownPackages
func importsKnownPackage(filepath string, knownPackages []string) (string, error) {
	fset := token.NewFileSet()
	sf, err := parser.ParseFile(fset, filepath, nil, parser.ImportsOnly)
	if err != nil {
		return "", fmt.Errorf("cannot parse file: %w", err)
	}

	for _, paragraph := range astutil.Imports(fset, sf) {
		for _, importSpec := range paragraph {
			if importSpec.Name != nil && importSpec.Name.Name == "_" {
				continue
			}
			importPath, err := strconv.Unquote(importSpec.Path.Value)
			if err != nil {
				return "", err
			}
			for _, known := range knownPackages {
				if importPath == known || strings.HasPrefix(importPath, known+"/") {
					return importPath, nil
				}
			}
		}
	}

	return "", nil
}
