package namepool

import (
	"bufio"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// Pool is a list of candidate names supporting without-replacement draws.
// Pools load from a line-oriented file in the data directory and fall back
// to an embedded default list when the file is absent, so a missing data
// file is never fatal.
type Pool struct {
	names []string
}

func Load(dataDir, file string, fallback []string) *Pool {
	names, err := readLines(filepath.Join(dataDir, file))
	if err != nil || len(names) == 0 {
		names = fallback
	}
	return &Pool{names: names}
}

func NewPool(names []string) *Pool {
	return &Pool{names: names}
}

func (p *Pool) Size() int {
	return len(p.names)
}

// Draw selects up to n distinct names. When the pool is smaller than n the
// draw is capped at the pool size rather than looping or failing.
func (p *Pool) Draw(rng *rand.Rand, n int) []string {
	if n > len(p.names) {
		n = len(p.names)
	}
	shuffled := make([]string, len(p.names))
	copy(shuffled, p.names)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// Pick returns one name uniformly, with replacement.
func (p *Pool) Pick(rng *rand.Rand) string {
	return p.names[rng.Intn(len(p.names))]
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
