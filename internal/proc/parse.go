package proc

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pranshuparmar/portreap/pkg/model"
)

// ParseListeners turns raw `lsof -nP -iTCP -sTCP:LISTEN` output into a
// deduplicated entity list sorted ascending by port. The first line is the
// header row; every malformed line is skipped, never fatal.
func ParseListeners(raw string) []model.PortEntity {
	lines := strings.Split(raw, "\n")

	seen := make(map[string]bool)
	var entities []model.PortEntity

	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 9 {
			continue
		}

		// COMMAND PID USER FD TYPE DEVICE SIZE/OFF NODE NAME
		name := fields[8]

		// Last colon, not first: a bracketed IPv6 address contains colons.
		idx := strings.LastIndex(name, ":")
		if idx < 0 {
			continue
		}
		port, err := strconv.Atoi(name[idx+1:])
		if err != nil {
			continue
		}

		e := model.PortEntity{
			Port:    port,
			Process: fields[0],
			PID:     fields[1],
			User:    fields[2],
			Address: canonicalAddress(name[:idx]),
		}
		if seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		entities = append(entities, e)
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Port < entities[j].Port
	})
	return entities
}

// canonicalAddress folds the wildcard and loopback spellings lsof uses into
// one form each; other IPv6 literals pass through unchanged.
func canonicalAddress(addr string) string {
	switch addr {
	case "*", "0.0.0.0", "[::]", "::":
		return "0.0.0.0"
	case "[::1]", "::1":
		return "127.0.0.1"
	}
	return addr
}
