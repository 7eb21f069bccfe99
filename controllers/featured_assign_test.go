package controllers

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func ids(n int) []bson.ObjectID {
	out := make([]bson.ObjectID, n)
	for i := range out {
		out[i] = bson.NewObjectID()
	}
	return out
}

func TestContainsID(t *testing.T) {
	list := ids(3)
	if !containsID(list, list[1]) {
		t.Error("expected membership")
	}
	if containsID(list, bson.NewObjectID()) {
		t.Error("unexpected membership")
	}
	if containsID(nil, list[0]) {
		t.Error("empty list can contain nothing")
	}
}

func TestDedupeIDs(t *testing.T) {
	base := ids(2)
	in := []bson.ObjectID{base[0], base[1], base[0], base[1], base[0]}
	got := dedupeIDs(in)
	if !reflect.DeepEqual(got, base) {
		t.Errorf("dedupeIDs = %v, want %v", got, base)
	}
}

func TestSplitNewMembers(t *testing.T) {
	current := ids(3)
	fresh := ids(2)

	tests := []struct {
		name        string
		requested   []bson.ObjectID
		wantNew     []bson.ObjectID
		wantSkipped int
	}{
		{"all new", fresh, fresh, 0},
		{"all already members", current, []bson.ObjectID{}, 3},
		{
			"mixed",
			[]bson.ObjectID{current[0], fresh[0], current[2], fresh[1]},
			fresh,
			2,
		},
		{"empty request", nil, []bson.ObjectID{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotNew, gotSkipped := splitNewMembers(current, tt.requested)
			if !reflect.DeepEqual(gotNew, tt.wantNew) {
				t.Errorf("new = %v, want %v", gotNew, tt.wantNew)
			}
			if gotSkipped != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", gotSkipped, tt.wantSkipped)
			}
			// Partition invariant: every requested id is either new or skipped.
			if len(gotNew)+gotSkipped != len(tt.requested) {
				t.Errorf("len(new)+skipped = %d, want %d", len(gotNew)+gotSkipped, len(tt.requested))
			}
		})
	}
}

func TestMissingIDs(t *testing.T) {
	existing := ids(3)
	ghost := ids(2)

	tests := []struct {
		name      string
		requested []bson.ObjectID
		want      []string
	}{
		{"all exist", existing, []string{}},
		{"none exist", ghost, []string{ghost[0].Hex(), ghost[1].Hex()}},
		{
			"exactly the nonexistent ones, in request order",
			[]bson.ObjectID{existing[1], ghost[1], existing[0], ghost[0]},
			[]string{ghost[1].Hex(), ghost[0].Hex()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := missingIDs(tt.requested, existing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("missingIDs = %v, want %v", got, tt.want)
			}
		})
	}
}
