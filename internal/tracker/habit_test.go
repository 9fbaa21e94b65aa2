package tracker

import "testing"

func TestHabitStoreAddPreservesOrderAndUniqueIDs(t *testing.T) {
	store := NewHabitStore()
	names := []string{"喝水", "Read", "Stretch", "Read"}

	for _, name := range names {
		if _, ok := store.Add(name, ""); !ok {
			t.Fatalf("Add(%q) rejected", name)
		}
	}

	habits := store.List()
	if len(habits) != len(names) {
		t.Fatalf("expected %d habits, got %d", len(names), len(habits))
	}

	seen := make(map[string]struct{})
	for i, h := range habits {
		if h.Name != names[i] {
			t.Fatalf("position %d: expected %q, got %q", i, names[i], h.Name)
		}
		if _, dup := seen[h.ID]; dup {
			t.Fatalf("duplicate id %s", h.ID)
		}
		seen[h.ID] = struct{}{}
	}
}

func TestHabitStoreAddTrimsAndRejectsBlank(t *testing.T) {
	store := NewHabitStore()

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, ok := store.Add(name, "💧"); ok {
			t.Fatalf("expected blank name %q to be rejected", name)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("expected no habits, got %d", store.Len())
	}

	habit, ok := store.Add("  Meditate  ", " 🧘 ")
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if habit.Name != "Meditate" || habit.Icon != "🧘" {
		t.Fatalf("unexpected habit: %+v", habit)
	}
}

func TestHabitStoreDelete(t *testing.T) {
	store := NewHabitStore()
	a, _ := store.Add("a", "")
	b, _ := store.Add("b", "")

	if store.Delete("missing") {
		t.Fatal("deleting unknown id should report false")
	}
	if !store.Delete(a.ID) {
		t.Fatal("expected delete to succeed")
	}
	if _, ok := store.Get(a.ID); ok {
		t.Fatal("deleted habit still present")
	}
	if got := store.List(); len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("unexpected habits after delete: %+v", got)
	}
}

func TestHabitStoreRegeneratesCollidingIDs(t *testing.T) {
	seq := []string{"x", "x", "x", "y"}
	calls := 0
	store := NewHabitStoreWithIDs(func() string {
		id := seq[calls]
		calls++
		return id
	})

	first, _ := store.Add("one", "")
	second, _ := store.Add("two", "")
	if first.ID != "x" || second.ID != "y" {
		t.Fatalf("expected ids x and y, got %s and %s", first.ID, second.ID)
	}
}

func TestNewHabitNormalizesInput(t *testing.T) {
	habit, ok := NewHabit("id-1", "  Walk  ", " 🚶 ")
	if !ok || habit.ID != "id-1" || habit.Name != "Walk" || habit.Icon != "🚶" {
		t.Fatalf("unexpected habit: %+v %v", habit, ok)
	}
	if _, ok := NewHabit("id-2", " \t\n", "🚶"); ok {
		t.Fatal("blank name must be rejected")
	}
}
