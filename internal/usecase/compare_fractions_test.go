package usecase

import (
	"testing"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
)

func TestCompareFractions_Execute(t *testing.T) {
	uc := NewCompareFractions()

	cases := []struct {
		a, b     string
		order    int
		relation string
		left     string
	}{
		{"1/2", "2/4", 0, "=", "1/2"},
		{"1/3", "1/2", -1, "<", "1/3"},
		{"6/4", "1", 1, ">", "3/2"},
		{"1/-2", "-1/3", -1, "<", "-1/2"},
	}
	for _, c := range cases {
		got, err := uc.Execute(c.a, c.b)
		if err != nil {
			t.Fatalf("%s vs %s: unexpected error: %v", c.a, c.b, err)
		}
		if got.Order != c.order || got.Relation != c.relation {
			t.Errorf("%s vs %s: got order=%d relation=%q", c.a, c.b, got.Order, got.Relation)
		}
		if got.LeftText != c.left {
			t.Errorf("%s: expected simplified %q, got %q", c.a, c.left, got.LeftText)
		}
	}
}

func TestCompareFractions_Errors(t *testing.T) {
	uc := NewCompareFractions()
	for _, pair := range [][2]string{{"1/0", "1/2"}, {"1/2", "x"}, {"", "1"}} {
		if _, err := uc.Execute(pair[0], pair[1]); !domain.IsKind(err, domain.KindInvalidArgument) {
			t.Errorf("%q vs %q: expected KindInvalidArgument, got %v", pair[0], pair[1], err)
		}
	}
}

func TestCompareFractions_Simplify(t *testing.T) {
	uc := NewCompareFractions()

	f, err := uc.Simplify("12/-18")
	if err != nil {
		t.Fatalf("Simplify error: %v", err)
	}
	if f.String() != "-2/3" {
		t.Fatalf("expected -2/3, got %s", f)
	}
	if _, err := uc.Simplify("3/0"); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument, got %v", err)
	}
}
