package usecase

import (
	"errors"
	"reflect"
	"testing"
)

func TestComparisonSet_Add(t *testing.T) {
	t.Run("holds up to four companies", func(t *testing.T) {
		var set ComparisonSet
		for _, id := range []uint{1, 2, 3, 4} {
			if err := set.Add(id); err != nil {
				t.Fatalf("unexpected error adding %d: %v", id, err)
			}
		}
		if set.Len() != 4 {
			t.Errorf("Len = %d, want 4", set.Len())
		}
	})

	t.Run("fifth company is rejected and membership unchanged", func(t *testing.T) {
		var set ComparisonSet
		for _, id := range []uint{1, 2, 3, 4} {
			if err := set.Add(id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		err := set.Add(5)

		if !errors.Is(err, ErrSetFull) {
			t.Fatalf("expected ErrSetFull, got: %v", err)
		}
		if !reflect.DeepEqual(set.IDs(), []uint{1, 2, 3, 4}) {
			t.Errorf("membership changed after rejected add: %v", set.IDs())
		}
	})

	t.Run("duplicate is rejected and membership unchanged", func(t *testing.T) {
		var set ComparisonSet
		if err := set.Add(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := set.Add(2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := set.Add(1)

		if !errors.Is(err, ErrDuplicateCompany) {
			t.Fatalf("expected ErrDuplicateCompany, got: %v", err)
		}
		if !reflect.DeepEqual(set.IDs(), []uint{1, 2}) {
			t.Errorf("membership changed after rejected add: %v", set.IDs())
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		var set ComparisonSet
		for _, id := range []uint{7, 3, 9} {
			if err := set.Add(id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if !reflect.DeepEqual(set.IDs(), []uint{7, 3, 9}) {
			t.Errorf("IDs = %v, want insertion order [7 3 9]", set.IDs())
		}
	})
}

func TestComparisonSet_Remove(t *testing.T) {
	var set ComparisonSet
	for _, id := range []uint{1, 2, 3} {
		if err := set.Add(id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	set.Remove(2)

	if !reflect.DeepEqual(set.IDs(), []uint{1, 3}) {
		t.Errorf("IDs = %v, want [1 3]", set.IDs())
	}

	// Removing an absent id is a no-op.
	set.Remove(42)
	if set.Len() != 2 {
		t.Errorf("Len = %d after removing absent id, want 2", set.Len())
	}
}

func TestComparisonSet_MetricsInvalidation(t *testing.T) {
	var set ComparisonSet
	if err := set.Add(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := set.Add(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set.SetMetrics(&Result{CompanyCount: 2})
	if _, ok := set.Metrics(); !ok {
		t.Fatal("metrics missing right after SetMetrics")
	}

	t.Run("add invalidates", func(t *testing.T) {
		if err := set.Add(3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := set.Metrics(); ok {
			t.Error("metrics survived a membership change")
		}
	})

	t.Run("remove invalidates", func(t *testing.T) {
		set.SetMetrics(&Result{CompanyCount: 3})
		set.Remove(1)
		if _, ok := set.Metrics(); ok {
			t.Error("metrics survived a membership change")
		}
	})

	t.Run("rejected add keeps metrics", func(t *testing.T) {
		set.SetMetrics(&Result{CompanyCount: 2})
		if err := set.Add(2); !errors.Is(err, ErrDuplicateCompany) {
			t.Fatalf("expected ErrDuplicateCompany, got: %v", err)
		}
		if _, ok := set.Metrics(); !ok {
			t.Error("rejected add invalidated metrics")
		}
	})
}
