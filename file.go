/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
)

// ReadInput reads the file at path. A missing file yields ErrInputNotFound.
func ReadInput(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return b, err
}

// WriteFileAtomic writes data to a temporary file next to path, syncs it and
// renames it into place, so path is either untouched or complete. An existing
// file keeps its permissions; new files are created 0644.
func WriteFileAtomic(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0o644, renameio.WithExistingPermissions())
}
