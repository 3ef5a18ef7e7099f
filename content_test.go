package parallax

import (
	"reflect"
	"testing"
)

func TestWithPlaceholder(t *testing.T) {
	items := []Item[string]{{Key: "a", Data: "alpha"}, {Key: "b", Data: "beta"}}
	got := WithPlaceholder(items)

	if len(got) != 3 {
		t.Fatalf("len(WithPlaceholder()) = %d, want 3", len(got))
	}
	if !got[0].IsPlaceholder() {
		t.Errorf("first item = %+v, want placeholder", got[0])
	}
	if !reflect.DeepEqual(got[1:], items) {
		t.Errorf("rest = %+v, want %+v", got[1:], items)
	}
	if items[0].Key != "a" {
		t.Error("WithPlaceholder modified its input")
	}
}

func TestWithPlaceholder_Empty(t *testing.T) {
	got := WithPlaceholder[int](nil)
	if len(got) != 1 || !got[0].IsPlaceholder() {
		t.Errorf("WithPlaceholder(nil) = %+v, want only the placeholder", got)
	}
}

func TestWithPlaceholderSection(t *testing.T) {
	sections := []Section[int]{{Key: "s1", Items: []Item[int]{{Key: "x", Data: 1}}}}
	got := WithPlaceholderSection(sections)

	if len(got) != 2 {
		t.Fatalf("len(WithPlaceholderSection()) = %d, want 2", len(got))
	}
	if !got[0].IsPlaceholder() || len(got[0].Items) != 1 || !got[0].Items[0].IsPlaceholder() {
		t.Errorf("first section = %+v, want placeholder section with one placeholder row", got[0])
	}
	if got[1].Key != "s1" {
		t.Errorf("second section key = %q, want s1", got[1].Key)
	}
}

func TestPlanContent(t *testing.T) {
	type tc struct {
		mode          ContentMode
		hasForeground bool
		want          ContentPlan
	}

	tests := map[string]tc{
		"children with foreground": {
			mode:          ContentChildren,
			hasForeground: true,
			want:          ContentPlan{ForegroundInContent: true, StickyIndices: []int{0}, PlaceholderChild: true},
		},
		"children without foreground": {
			mode: ContentChildren,
			want: ContentPlan{PlaceholderChild: true},
		},
		"data with foreground": {
			mode:          ContentData,
			hasForeground: true,
			want:          ContentPlan{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := PlanContent(tt.mode, tt.hasForeground)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PlanContent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlaceholderRows(t *testing.T) {
	render := PlaceholderRows(
		func(it Item[string]) string { return "row:" + it.Data },
		func() string { return "empty" },
	)

	rows := WithPlaceholder([]Item[string]{{Key: "1", Data: "one"}})
	var got []string
	for _, it := range rows {
		got = append(got, render(it))
	}

	want := []string{"empty", "row:one"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rendered %v, want %v", got, want)
	}
}
