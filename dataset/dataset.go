package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/sociograph/core"
)

// Sentinel errors for edge-list loading.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dataset: graph is nil")

	// ErrBadLine indicates a non-comment line without exactly two fields.
	ErrBadLine = errors.New("dataset: malformed edge line")
)

const commentPrefix = "#"

// Load reads an edge list from r into g and returns the number of edge
// lines applied (duplicate friendships count as lines read but do not
// grow the graph).
func Load(r io.Reader, g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	scanner := bufio.NewScanner(r)
	edges := 0
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return edges, fmt.Errorf("%w: line %d: %q", ErrBadLine, line, text)
		}
		if err := g.AddEdge(fields[0], fields[1]); err != nil {
			return edges, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		edges++
	}
	if err := scanner.Err(); err != nil {
		return edges, fmt.Errorf("dataset: read: %w", err)
	}

	return edges, nil
}

// LoadFile opens path and loads it via Load.
func LoadFile(path string, g *core.Graph) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, g)
}
