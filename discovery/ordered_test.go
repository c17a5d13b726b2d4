package discovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap_InsertionOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)

	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	var got []int
	for _, v := range m.All() {
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_OverwriteKeepsPosition(t *testing.T) {
	m := NewMap[string]()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if diff := cmp.Diff([]string{"a", "b"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("a"); v != "3" {
		t.Errorf("Get(a) = %q, want 3", v)
	}
}

func TestMap_ZeroAndNil(t *testing.T) {
	var zero Map[int]
	zero.Set("x", 1)
	if zero.Len() != 1 {
		t.Errorf("zero value Map should accept Set, Len() = %d", zero.Len())
	}

	var nilMap *Map[int]
	if nilMap.Len() != 0 {
		t.Error("nil Map should be empty")
	}
	if _, ok := nilMap.Get("x"); ok {
		t.Error("nil Map Get should miss")
	}
	if nilMap.Keys() != nil {
		t.Error("nil Map Keys should be nil")
	}
	for range nilMap.All() {
		t.Error("nil Map should yield nothing")
	}
}

func TestMap_KeysIsCopy(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	keys := m.Keys()
	keys[0] = "mutated"
	if m.Keys()[0] != "a" {
		t.Error("Keys() must return a copy")
	}
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	count := 0
	for range m.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iterated %d times, want 2", count)
	}
}
