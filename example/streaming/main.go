package main

import (
	"context"
	"fmt"
	"log"

	"github.com/lanrat/sortviz"
)

func main() {
	items := sortviz.ScalarItems(9, 7, 8, 2, 5, 1, 3, 6, 4)

	// steps arrive on the channel as the algorithm produces them
	stepChan, errChan := sortviz.StreamSort(context.Background(), items, "value", sortviz.MergeSort, nil)

	n := 0
	for step := range stepChan {
		fmt.Println(step)
		n++
	}
	if err := <-errChan; err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d steps\n", n)
}
