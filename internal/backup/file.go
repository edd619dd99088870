package backup

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const filePrefix = "grace-backup-"

// WriteFile serializes doc into dir and returns the file path. The file is
// plain UTF-8 JSON, ready for the platform share mechanism; writing it
// never touches the storage layer.
func (e *Engine) WriteFile(dir string) (string, error) {
	doc := e.CreateBackupObject()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode backup")
	}
	name := filePrefix + time.Now().Format("20060102-150405") + ".json"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.Wrap(err, "write backup file")
	}
	return path, nil
}

// RestoreFile reads a picked backup file and restores from it.
func (e *Engine) RestoreFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read backup file")
	}
	return e.RestoreFullBackup(data)
}

// Prune keeps the newest keep backup files in dir and removes the rest.
func Prune(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), filePrefix) {
			names = append(names, entry.Name())
		}
	}
	// timestamped names sort chronologically
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	for i := keep; i < len(names); i++ {
		_ = os.Remove(filepath.Join(dir, names[i]))
	}
	return nil
}
