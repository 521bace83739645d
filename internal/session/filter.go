package session

import (
	"strconv"
	"strings"

	"github.com/pranshuparmar/portreap/pkg/model"
)

// Filter returns the subsequence of entities matching query. An empty query
// returns the input unchanged. Matching is case-insensitive substring
// containment against the process name, the decimal port, or the address.
func Filter(entities []model.PortEntity, query string) []model.PortEntity {
	if query == "" {
		return entities
	}
	q := strings.ToLower(query)

	var out []model.PortEntity
	for _, e := range entities {
		if strings.Contains(strings.ToLower(e.Process), q) ||
			strings.Contains(strconv.Itoa(e.Port), q) ||
			strings.Contains(strings.ToLower(e.Address), q) {
			out = append(out, e)
		}
	}
	return out
}
