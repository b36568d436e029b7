package migrate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/nvinuesa/opmigrate/internal/model"
)

// SafeFileName reduces an item name to letters, digits, and spaces and
// drops trailing spaces, so dump files are safe on any filesystem.
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// dumpFileName derives the dump file base name for an item. The same
// name is used for the pre- and post-translation dump. Items whose name
// sanitizes to nothing fall back to their ID, then to a random one.
func dumpFileName(item *model.Item) string {
	if name := SafeFileName(item.Name); name != "" {
		return name
	}
	if item.ID != "" {
		return item.ID
	}
	return uuid.NewString()
}

// writeDump writes v as indented JSON to dir/<name>.json, creating dir
// as needed.
func writeDump(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name+".json"), data, 0o600)
}
