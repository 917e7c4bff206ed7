package cliapp

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// numThreads parses the optional num_threads token, defaulting to 1
// (synchronous) when absent or invalid.
func (t tokens) numThreads() int {
	v, ok := t.values["num_threads"]
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// invalidFilenameChars are replaced with "_" when building a log
// filename from user-supplied plugin/map names, per spec.md §6.
const invalidFilenameChars = `\/:*?"<>|`

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return '_'
		}
		return r
	}, name)
}

// basicLogFilename builds the timestamped, sanitized filename spec.md
// §6 specifies for Basic mode's verbose per-step log.
func basicLogFilename(algo1, algo2, mapName string) string {
	id := time.Now().Format("20060102_150405") + "_" + uuid.NewString()
	return "game_" + sanitizeFilename(algo1) + "_vs_" + sanitizeFilename(algo2) + "_" + sanitizeFilename(mapName) + "_" + id + ".txt"
}
