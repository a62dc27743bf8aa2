package main

import (
	"fmt"
	"log"

	"github.com/lanrat/sortviz"
	"github.com/lanrat/sortviz/replay"
)

func main() {
	// items carrying a named trait each
	items := []sortviz.TraitValuer{
		sortviz.MapItem{"happiness": 5, "hunger": 1},
		sortviz.MapItem{"happiness": 3, "hunger": 4},
		sortviz.MapItem{"happiness": 4, "hunger": 2},
		sortviz.MapItem{"happiness": 1, "hunger": 5},
		sortviz.MapItem{"happiness": 2, "hunger": 3},
	}

	// compute the full trace of an insertion sort by happiness
	steps, err := sortviz.Sort(items, "happiness", sortviz.InsertionSort)
	if err != nil {
		log.Fatal(err)
	}

	for _, step := range steps {
		fmt.Println(step)
	}

	// replaying the trace against the original items reproduces the
	// sorted arrangement
	final, err := replay.Apply(items, steps)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("final arrangement: %v\n", final)
}
