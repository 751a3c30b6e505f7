package bashconf

import (
	"context"
	"errors"
	"os"

	"shellconf/internal/constants"
	"shellconf/internal/logger"
)

// Load reads path fully into memory and parses it. A missing file yields
// an empty document bound to that path, so a first Save creates it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			d, _ := Parse("")
			d.path = path
			return d, nil
		}
		return nil, err
	}

	d, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	d.path = path
	return d, nil
}

// Save serializes the document and writes it to path, defaulting to the
// path it was loaded from. When Backup is enabled an existing destination
// is first copied to a .bak file; a failed backup is logged and does not
// block the write.
func (d *Document) Save(ctx context.Context, path string) error {
	if path == "" {
		path = d.path
	}
	if path == "" {
		return errors.New("no destination path: document was parsed from text")
	}

	text, err := d.Text()
	if err != nil {
		return err
	}

	if d.Backup {
		if err := backupFile(path); err != nil {
			logger.Warn(ctx, "Failed to back up '%s': %v", path, err)
		}
	}

	return os.WriteFile(path, []byte(text), 0644)
}

func backupFile(path string) error {
	prev, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.WriteFile(path+constants.BackupSuffix, prev, 0644)
}
