package querycache

import "testing"

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		op     string
		params []string
		want   string
	}{
		{name: "no params", op: "menuCategories", want: "menuCategories"},
		{name: "one param", op: "menuItems", params: []string{"starters"}, want: "menuItems:starters"},
		{name: "two params", op: "profile", params: []string{"p1", "v2"}, want: "profile:p1:v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Key(tt.op, tt.params...); got != tt.want {
				t.Fatalf("Key(%q, %v) = %q, want %q", tt.op, tt.params, got, tt.want)
			}
		})
	}
}

func TestCache_SetGetInvalidate(t *testing.T) {
	t.Parallel()

	c := New()

	if _, ok := c.Get("menuCategories"); ok {
		t.Fatal("empty cache reported a hit")
	}

	c.Set("menuCategories", []string{"starters"})
	got, ok := Lookup[[]string](c, "menuCategories")
	if !ok || len(got) != 1 || got[0] != "starters" {
		t.Fatalf("Lookup = %v, %v", got, ok)
	}

	c.Invalidate("menuCategories")
	if _, ok := c.Get("menuCategories"); ok {
		t.Fatal("invalidated key still cached")
	}
}

func TestCache_InvalidateOp(t *testing.T) {
	t.Parallel()

	c := New()
	c.Set("menuItems", "flat")
	c.Set(Key("menuItems", "starters"), "a")
	c.Set(Key("menuItems", "mains"), "b")
	c.Set("menuCategories", "untouched")

	c.InvalidateOp("menuItems")

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if _, ok := c.Get("menuCategories"); !ok {
		t.Fatal("unrelated key was invalidated")
	}
}

func TestLookup_TypeMismatchIsMiss(t *testing.T) {
	t.Parallel()

	c := New()
	c.Set("reviews", 42)

	if _, ok := Lookup[string](c, "reviews"); ok {
		t.Fatal("mismatched type reported a hit")
	}
}
