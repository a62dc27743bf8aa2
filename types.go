package sortviz

// Trait names a comparable numeric facet of an item, such as "happiness".
// The trait chosen for a sort call selects which facet drives every
// comparison in that call.
type Trait string

// TraitValuer is the capability an item must expose to be sorted. The engine
// is decoupled from any concrete item schema: it only ever reads the value
// for the trait it was asked to sort by.
type TraitValuer interface {
	// TraitValue returns the item's value for the given trait. The second
	// return is false when the item has no value for that trait; the engine
	// converts that into a MissingTraitError at the first comparison that
	// needs it.
	TraitValue(trait Trait) (float64, bool)
}

// emitFunc receives each step as an algorithm executes. Returning an error
// aborts the sort; the buffered API never returns one, the streaming API
// uses it to propagate context cancellation.
type emitFunc func(Step) error
