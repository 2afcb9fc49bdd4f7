package generator

import "fmt"

// descriptionSlot is the reserved first tab stop of every template.
const descriptionSlot = "${1:Description.}"

// placeholders hands out numbered editable snippet slots in emission order.
// Slot 1 is always the top-level description, so the counter starts at 2.
// One instance is scoped to one generation call.
type placeholders struct {
	next int
}

func newPlaceholders() *placeholders {
	return &placeholders{next: 2}
}

// reserve formats the next tab stop with its default text and advances the
// counter. This is the builder's sole mutation.
func (p *placeholders) reserve(def string) string {
	slot := fmt.Sprintf("${%d:%s}", p.next, def)
	p.next++
	return slot
}
