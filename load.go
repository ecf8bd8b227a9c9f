// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"os"

	"github.com/ik5/audmix/decode"
	"github.com/ik5/audmix/mixer"
)

// LoadFile decodes the file at path into a new stopped player on eng and
// returns the player id.
func LoadFile(eng *mixer.Engine, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	defer f.Close()

	br, err := decode.FileRange(f, 0, 0)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	id, err := eng.Load(br)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return id, nil
}

// LoadFiles loads every path in order. Either all files load, or none do:
// on the first failure the players created so far are unloaded.
func LoadFiles(eng *mixer.Engine, paths ...string) ([]string, error) {
	ids := make([]string, 0, len(paths))

	for _, path := range paths {
		id, err := LoadFile(eng, path)
		if err != nil {
			eng.Unload(ids...)
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
