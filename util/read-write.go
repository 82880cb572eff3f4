package util

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ReadWords returns every whitespace separated word in the file at path
func ReadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}

	defer f.Close()

	var (
		words   []string
		scanner = bufio.NewScanner(f)
	)

	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %q: %w", path, err)
	}

	return words, nil
}

func WriteCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}

	defer f.Close()

	if err := csv.NewWriter(f).WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	return nil
}
