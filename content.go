package parallax

// PlaceholderKey marks the empty leading row or section injected in front of
// the content.
const PlaceholderKey = "__PARALLAX_SCROLL__"

// Item is one row of list content.
type Item[T any] struct {
	Key  string
	Data T
}

// Section groups rows under a key.
type Section[T any] struct {
	Key   string
	Items []Item[T]
}

// IsPlaceholder reports whether an item is the injected placeholder row.
func (it Item[T]) IsPlaceholder() bool {
	return it.Key == PlaceholderKey
}

// IsPlaceholder reports whether a section is the injected placeholder section.
func (s Section[T]) IsPlaceholder() bool {
	return s.Key == PlaceholderKey
}

// WithPlaceholder returns items with a placeholder row in front. The input
// slice is not modified.
func WithPlaceholder[T any](items []Item[T]) []Item[T] {
	out := make([]Item[T], 0, len(items)+1)
	out = append(out, Item[T]{Key: PlaceholderKey})
	return append(out, items...)
}

// WithPlaceholderSection returns sections with a single-row placeholder
// section in front. The input slice is not modified.
func WithPlaceholderSection[T any](sections []Section[T]) []Section[T] {
	out := make([]Section[T], 0, len(sections)+1)
	out = append(out, Section[T]{
		Key:   PlaceholderKey,
		Items: []Item[T]{{Key: PlaceholderKey}},
	})
	return append(out, sections...)
}

// ContentMode says how the scroll view receives its content.
type ContentMode uint8

const (
	// ContentChildren is a fixed set of child views.
	ContentChildren ContentMode = iota
	// ContentData is list data rendered row by row.
	ContentData
)

// ContentPlan tells the layout how to arrange the scroll content.
type ContentPlan struct {
	// ForegroundInContent places the foreground inside the scrolled
	// content as its first, sticky child instead of above it.
	ForegroundInContent bool
	// StickyIndices lists content children that stick to the top.
	StickyIndices []int
	// PlaceholderChild inserts an empty child of PlaceholderHeight before
	// the children. For data content the placeholder is injected into the
	// data with WithPlaceholder instead.
	PlaceholderChild bool
}

// PlanContent decides where the foreground and the placeholder go.
func PlanContent(mode ContentMode, hasForeground bool) ContentPlan {
	if mode == ContentData {
		return ContentPlan{}
	}
	plan := ContentPlan{PlaceholderChild: true}
	if hasForeground {
		plan.ForegroundInContent = true
		plan.StickyIndices = []int{0}
	}
	return plan
}

// PlaceholderRows wraps a row renderer so the placeholder row is drawn by
// empty instead.
func PlaceholderRows[T, R any](render func(Item[T]) R, empty func() R) func(Item[T]) R {
	return func(it Item[T]) R {
		if it.IsPlaceholder() {
			return empty()
		}
		return render(it)
	}
}
