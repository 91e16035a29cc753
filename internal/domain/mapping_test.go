package domain

import "testing"

func TestMapping_Decide(t *testing.T) {
	const (
		src  = "/exports/notion/Plan.md"
		dest = "Knowledge/IntegrateWise/Business/plan.md"
	)
	id := NewStableID(src)

	tests := []struct {
		name     string
		existing map[StableID]MappingEntry
		source   string
		dest     string
		want     Decision
	}{
		{
			name:   "unknown id migrates",
			source: src,
			dest:   dest,
			want:   DecisionMigrate,
		},
		{
			name:     "same destination skips",
			existing: map[StableID]MappingEntry{id: {Source: src, Dest: dest}},
			source:   src,
			dest:     dest,
			want:     DecisionSkip,
		},
		{
			name:     "destination drift remigrates",
			existing: map[StableID]MappingEntry{id: {Source: src, Dest: "Knowledge/IntegrateWise/Misc/plan.md"}},
			source:   src,
			dest:     dest,
			want:     DecisionRemigrate,
		},
		{
			name:     "different source with same id collides",
			existing: map[StableID]MappingEntry{id: {Source: "/somewhere/else.md", Dest: dest}},
			source:   src,
			dest:     dest,
			want:     DecisionCollision,
		},
		{
			name:     "entry without source is trusted",
			existing: map[StableID]MappingEntry{id: {Dest: dest}},
			source:   src,
			dest:     dest,
			want:     DecisionSkip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMappingFrom(tt.existing)
			if got := m.Decide(id, tt.source, tt.dest); got != tt.want {
				t.Errorf("Decide() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMapping_UpsertAndLookup(t *testing.T) {
	m := NewMapping()
	if m.Len() != 0 {
		t.Fatalf("expected empty mapping, got %d entries", m.Len())
	}

	m.Upsert("bbbbbbbbbbbbbbbb", MappingEntry{Source: "/b", Dest: "B.md"})
	m.Upsert("aaaaaaaaaaaaaaaa", MappingEntry{Source: "/a", Dest: "A.md"})
	m.Upsert("aaaaaaaaaaaaaaaa", MappingEntry{Source: "/a", Dest: "A2.md"})

	if m.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", m.Len())
	}

	e, ok := m.Get("aaaaaaaaaaaaaaaa")
	if !ok || e.Dest != "A2.md" {
		t.Errorf("expected overwritten entry with dest A2.md, got %+v (found=%v)", e, ok)
	}

	ids := m.IDs()
	if len(ids) != 2 || ids[0] != "aaaaaaaaaaaaaaaa" || ids[1] != "bbbbbbbbbbbbbbbb" {
		t.Errorf("expected sorted IDs, got %v", ids)
	}

	id, e, ok := m.FindBySource("/b")
	if !ok || id != "bbbbbbbbbbbbbbbb" || e.Dest != "B.md" {
		t.Errorf("FindBySource(/b) = %s, %+v, %v", id, e, ok)
	}
	if _, _, ok := m.FindBySource("/missing"); ok {
		t.Error("expected FindBySource to miss an unknown path")
	}
}

func TestMapping_TableIsCopy(t *testing.T) {
	m := NewMapping()
	m.Upsert("aaaaaaaaaaaaaaaa", MappingEntry{Dest: "A.md"})

	table := m.Table()
	delete(table, "aaaaaaaaaaaaaaaa")

	if m.Len() != 1 {
		t.Error("mutating Table() result changed the mapping")
	}
}

func TestDecision_Writes(t *testing.T) {
	tests := []struct {
		d    Decision
		want bool
	}{
		{DecisionMigrate, true},
		{DecisionRemigrate, true},
		{DecisionSkip, false},
		{DecisionCollision, false},
	}

	for _, tt := range tests {
		if got := tt.d.Writes(); got != tt.want {
			t.Errorf("%s.Writes() = %v, want %v", tt.d, got, tt.want)
		}
	}
}
