package commands

import (
	"context"
	"errors"
	"testing"

	"todofs/internal/testutil"
	"todofs/internal/view"
)

func TestParseTaskRef_Number(t *testing.T) {
	ref, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.IsNumber() {
		t.Error("expected a numeric ref")
	}
	if ref.Num != 5 {
		t.Errorf("expected Num 5, got %d", ref.Num)
	}
}

func TestParseTaskRef_Name(t *testing.T) {
	ref, err := ParseTaskRef([]string{"Buy", "milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.IsNumber() {
		t.Error("expected a name ref")
	}
	if ref.Name != "Buy milk" {
		t.Errorf("expected Name %q, got %q", "Buy milk", ref.Name)
	}
}

func TestParseTaskRef_DigitsAmongWordsAreAName(t *testing.T) {
	ref, err := ParseTaskRef([]string{"call", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Name != "call 2" {
		t.Errorf("expected Name %q, got %q", "call 2", ref.Name)
	}
}

func TestParseTaskRef_MixedTokenIsAName(t *testing.T) {
	for _, arg := range []string{"a1", "-1", "1.5", "٣"} {
		ref, err := ParseTaskRef([]string{arg})
		if err != nil {
			t.Errorf("ParseTaskRef(%q): unexpected error: %v", arg, err)
			continue
		}
		if ref.IsNumber() {
			t.Errorf("ParseTaskRef(%q): expected a name ref", arg)
		}
	}
}

func TestParseTaskRef_Empty(t *testing.T) {
	for _, args := range [][]string{nil, {}, {" ", ""}} {
		_, err := ParseTaskRef(args)
		if !errors.Is(err, ErrTaskRefRequired) {
			t.Errorf("ParseTaskRef(%q): expected ErrTaskRefRequired, got %v", args, err)
		}
	}
}

func TestParseTaskRef_Overflow(t *testing.T) {
	_, err := ParseTaskRef([]string{"99999999999999999999999"})
	if err == nil {
		t.Error("expected error for overflowing number")
	}
}

func TestTaskRef_Resolve(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultList, "Buy milk", false)
	svc.AddTask(testutil.DefaultList, "42", false)
	v, err := view.Load(context.Background(), svc, testutil.DefaultList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		ref     TaskRef
		want    int
		wantErr error
	}{
		{TaskRef{Num: 1}, 0, nil},
		{TaskRef{Num: 2}, 1, nil},
		{TaskRef{Num: 0}, -1, view.ErrOutOfRange},
		{TaskRef{Num: 3}, -1, view.ErrOutOfRange},
		{TaskRef{Name: "Buy milk"}, 0, nil},
		{TaskRef{Name: "buy milk"}, -1, ErrTaskNotFound},
	}
	for _, tt := range tests {
		got, err := tt.ref.Resolve(v)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resolve(%+v): expected %v, got %v", tt.ref, tt.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%+v): unexpected error: %v", tt.ref, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%+v) = %d, want %d", tt.ref, got, tt.want)
		}
	}
}
