package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lanrat/sortviz"
)

// dataset is a YAML document of named items, each carrying a value per
// trait. An item may omit traits; sorting by an omitted trait fails lazily,
// at the first comparison that needs the missing value.
//
//	trait: happiness
//	items:
//	  - name: sunny
//	    traits:
//	      happiness: 9
//	      hunger: 2
type dataset struct {
	// Trait is the default trait to sort by, overridable with --trait
	Trait sortviz.Trait `yaml:"trait"`
	Items []datasetItem `yaml:"items"`
}

type datasetItem struct {
	Name   string                    `yaml:"name"`
	Traits map[sortviz.Trait]float64 `yaml:"traits"`
}

// TraitValue implements sortviz.TraitValuer.
func (d datasetItem) TraitValue(trait sortviz.Trait) (float64, bool) {
	v, ok := d.Traits[trait]
	return v, ok
}

func loadDataset(path string) (*dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &ds, nil
}

// sortables returns the dataset items as engine inputs plus their values
// for trait, for the trace file header. Items lacking the trait are passed
// through untouched; the engine reports them lazily, at the first
// comparison that needs the missing value.
func (ds *dataset) sortables(trait sortviz.Trait) ([]sortviz.TraitValuer, []float64, error) {
	items := make([]sortviz.TraitValuer, len(ds.Items))
	values := make([]float64, len(ds.Items))
	for i, item := range ds.Items {
		items[i] = item
		values[i], _ = item.TraitValue(trait)
	}
	return items, values, nil
}
