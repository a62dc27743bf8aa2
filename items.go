package sortviz

// ScalarItem is the simplest TraitValuer: a bare number that reports the
// same value for every trait. Handy for demos and tests where the trait
// dimension does not matter.
type ScalarItem float64

// TraitValue implements TraitValuer. A ScalarItem has every trait.
func (s ScalarItem) TraitValue(Trait) (float64, bool) {
	return float64(s), true
}

// ScalarItems wraps plain values as sortable items.
func ScalarItems(values ...float64) []TraitValuer {
	items := make([]TraitValuer, len(values))
	for i, v := range values {
		items[i] = ScalarItem(v)
	}
	return items
}

// MapItem carries an explicit value per trait. A trait absent from the map
// is a missing trait and fails the comparison that first needs it.
type MapItem map[Trait]float64

// TraitValue implements TraitValuer.
func (m MapItem) TraitValue(trait Trait) (float64, bool) {
	v, ok := m[trait]
	return v, ok
}
