package automatic

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"lukechampine.com/frand"
)

// GenerateSeeds creates n random 32-byte seeds for deterministic game runs
func GenerateSeeds(n int) [][32]byte {
	seeds := make([][32]byte, n)
	for i := range seeds {
		seeds[i] = frand.Entropy256()
	}
	return seeds
}

// WriteSeeds writes seeds in base64 format, one per line, after a
// comment header.
func WriteSeeds(w io.Writer, seeds [][32]byte) error {
	writer := bufio.NewWriter(w)
	_, err := writer.WriteString("# Azul game seeds (base64 URL-safe encoded, 32 bytes each)\n")
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, seed := range seeds {
		_, err = writer.WriteString(base64.RawURLEncoding.EncodeToString(seed[:]) + "\n")
		if err != nil {
			return fmt.Errorf("failed to write seed %d: %w", i, err)
		}
	}
	return writer.Flush()
}

// SaveSeeds writes seeds to a file.
func SaveSeeds(seeds [][32]byte, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create seed file: %w", err)
	}
	if err := WriteSeeds(file, seeds); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ReadSeeds reads seeds written by WriteSeeds. Blank lines and lines
// starting with # are skipped.
func ReadSeeds(r io.Reader) ([][32]byte, error) {
	var seeds [][32]byte
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("failed to decode seed at line %d: %w", lineNum, err)
		}
		if len(decoded) != 32 {
			return nil, fmt.Errorf("invalid seed length at line %d: got %d bytes, expected 32", lineNum, len(decoded))
		}
		var seed [32]byte
		copy(seed[:], decoded)
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	return seeds, nil
}

// LoadSeeds reads seeds from a file.
func LoadSeeds(path string) ([][32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()
	return ReadSeeds(file)
}

// LoadOrCreateSeeds loads the seeds in path. If there is no such file, n
// new seeds are generated and saved there. An empty path just generates.
func LoadOrCreateSeeds(path string, n int) ([][32]byte, error) {
	if path == "" {
		return GenerateSeeds(n), nil
	}
	seeds, err := LoadSeeds(path)
	if err == nil {
		return seeds, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	seeds = GenerateSeeds(n)
	if err := SaveSeeds(seeds, path); err != nil {
		return nil, err
	}
	return seeds, nil
}
