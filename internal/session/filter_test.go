package session

import (
	"reflect"
	"testing"

	"github.com/pranshuparmar/portreap/pkg/model"
)

func sampleEntities() []model.PortEntity {
	return []model.PortEntity{
		{Port: 3000, Process: "node", PID: "100", User: "alice", Address: "127.0.0.1"},
		{Port: 8180, Process: "java", PID: "200", User: "bob", Address: "0.0.0.0"},
		{Port: 5432, Process: "postgres", PID: "300", User: "postgres", Address: "[fe80::1]"},
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	entities := sampleEntities()
	got := Filter(entities, "")
	if !reflect.DeepEqual(got, entities) {
		t.Errorf("Filter(e, \"\") changed the list: %+v", got)
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	entities := sampleEntities()
	upper := Filter(entities, "NODE")
	lower := Filter(entities, "node")
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("NODE and node filtered differently: %+v vs %+v", upper, lower)
	}
	if len(lower) != 1 || lower[0].Process != "node" {
		t.Errorf("Filter by process = %+v, want just node", lower)
	}
}

func TestFilter_MatchesPortSubstring(t *testing.T) {
	got := Filter(sampleEntities(), "81")
	if len(got) != 1 || got[0].Port != 8180 {
		t.Errorf("Filter by \"81\" = %+v, want just 8180", got)
	}
}

func TestFilter_MatchesAddress(t *testing.T) {
	got := Filter(sampleEntities(), "fe80")
	if len(got) != 1 || got[0].Port != 5432 {
		t.Errorf("Filter by address = %+v, want just 5432", got)
	}
}

func TestFilter_FieldsAreORed(t *testing.T) {
	// "0" appears in ports and addresses across all three entities.
	got := Filter(sampleEntities(), "0")
	if len(got) != 3 {
		t.Errorf("Filter by \"0\" = %d entities, want 3", len(got))
	}
}

func TestFilter_NoMatch(t *testing.T) {
	got := Filter(sampleEntities(), "nothing-matches-this")
	if len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(sampleEntities(), "o") // node, postgres
	if len(got) != 2 || got[0].Port != 3000 || got[1].Port != 5432 {
		t.Errorf("order not preserved: %+v", got)
	}
}
