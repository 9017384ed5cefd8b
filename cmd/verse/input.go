package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const stdinName = "-"

// sources returns args, or stdin when there are none.
func sources(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

func readSource(name string, stdin io.Reader) (string, error) {
	if name == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", name, err)
	}
	return string(data), nil
}

// titleFromPath turns "poems/night_rain.txt" into "night rain".
func titleFromPath(name string) string {
	if name == stdinName {
		return "stdin"
	}
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(base)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
