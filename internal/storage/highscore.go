package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
)

// scoreSize is the on-disk size of the high score: one little-endian int32.
const scoreSize = 4

// LoadHighScore reads the high score file.
// A missing file or one shorter than four bytes yields 0 without error;
// other read failures yield 0 and the error for logging.
func LoadHighScore(path string) (int, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot open score file: %w", err)
	}
	defer f.Close()

	var buf [scoreSize]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("storage: cannot read score file: %w", err)
	}

	return int(int32(binary.LittleEndian.Uint32(buf[:]))), nil
}

// SaveHighScore writes the score as one little-endian int32, replacing any
// previous content. Scores outside the int32 range are clamped.
func SaveHighScore(path string, score int) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	score = max(math.MinInt32, min(math.MaxInt32, score))

	var buf [scoreSize]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(int32(score)))
	if err := os.WriteFile(path, buf[:], 0o644); err != nil {
		return fmt.Errorf("storage: cannot write score file: %w", err)
	}
	return nil
}
