package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zsiec/cutcheck/internal/correlate"
	"github.com/zsiec/cutcheck/internal/errors"
)

// OutputPath derives the artifact path from the XML input: the file
// name up to its first dot plus ".json", in the input's directory
// unless dir overrides it. First dot, not last: "v1.2.xml" becomes
// "v1.json", which is what consumers of these fixtures already key on.
func OutputPath(xmlPath, dir string) string {
	name := filepath.Base(xmlPath)
	stem := strings.SplitN(name, ".", 2)[0]

	if dir == "" {
		dir = filepath.Dir(xmlPath)
	}
	return filepath.Join(dir, stem+".json")
}

// Marshal encodes the aggregate the way the fixture consumers expect:
// struct field order, indent-many spaces, no trailing newline, every
// non-integer numeric carried as a string.
func Marshal(info *correlate.SequenceInfo, indent int) ([]byte, error) {
	data, err := json.MarshalIndent(info, "", strings.Repeat(" ", indent))
	if err != nil {
		return nil, errors.WrapInternalError(err, "encoding fixture")
	}
	return data, nil
}

// Write encodes and writes the fixture. Nothing is written if
// encoding fails, so a failed run never leaves a partial artifact.
func Write(path string, info *correlate.SequenceInfo, indent int) error {
	data, err := Marshal(info, indent)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapInternalError(err, fmt.Sprintf("writing fixture %s", path))
	}
	return nil
}
