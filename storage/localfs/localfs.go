/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package localfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dirpx.dev/fallible/storage"
)

// Store is a local filesystem-backed text store.
//
// Paths are interpreted relative to the configured root. File handles are
// opened and closed inside each call, so no resource outlives an invocation
// on any exit path.
type Store struct {
	root string
}

// New constructs a filesystem store rooted at root. The directory will be
// created if needed.
func New(root string) (*Store, error) {
	if root == "" {
		return nil, errors.New("localfs: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

func (s *Store) ReadText(path string) (string, error) {
	b, err := os.ReadFile(s.join(path))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("localfs: read %s: %w", path, storage.ErrNotFound)
		}
		return "", fmt.Errorf("localfs: read %s: %w", path, err)
	}
	return string(b), nil
}

func (s *Store) WriteText(path string, text string) error {
	full := s.join(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("localfs: write %s: %w", path, err)
	}
	if err := os.WriteFile(full, []byte(text), 0o644); err != nil {
		return fmt.Errorf("localfs: write %s: %w", path, err)
	}
	return nil
}

func (s *Store) join(path string) string {
	return filepath.Join(s.root, filepath.Clean(path))
}
