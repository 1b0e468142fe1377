package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Batch lines carry a parameter name, a value, and one reserved token.
const maxBatchTokens = 3

// ReadBatchFile parses a parameter batch file: one directive per line,
// whitespace-separated tokens, lines starting with '#' are comments. The
// reserved third token is dropped; a line with more tokens than that
// aborts the rest of the file.
func ReadBatchFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	var lines [][]string
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) > maxBatchTokens {
			return nil, fmt.Errorf("%s:%d: too many tokens", path, lineno)
		}
		if len(tokens) == maxBatchTokens {
			tokens = tokens[:2]
		}
		lines = append(lines, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
