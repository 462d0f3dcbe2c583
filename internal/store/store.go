// Package store provides the whole-document persistence variants backing the
// recipe repository: an in-memory document, a flat JSON file, and a remotely
// hosted JSON blob. Each variant reads and writes the full collection as one
// unit behind the same DocumentStore contract.
package store

import (
	"context"

	"github.com/hazelkitchen/recipebook/backend/internal/model"
)

// Document is the persisted layout of the whole-document variant: every
// recipe plus the next-id counter.
type Document struct {
	Recipes []model.Recipe `json:"recipes"`
	NextID  int64          `json:"nextId"`
}

// Normalize repairs a document loaded from an older or hand-edited blob. A
// missing recipes array becomes empty and a missing or corrupt next-id
// counter is rebuilt from the highest assigned id.
func (d *Document) Normalize() {
	if d.Recipes == nil {
		d.Recipes = []model.Recipe{}
	}
	if d.NextID < 1 {
		var maxID int64
		for _, r := range d.Recipes {
			if r.ID > maxID {
				maxID = r.ID
			}
		}
		d.NextID = maxID + 1
	}
}

// Clone returns a deep copy so that callers can mutate the result without
// aliasing the stored state.
func (d *Document) Clone() *Document {
	out := &Document{
		Recipes: make([]model.Recipe, len(d.Recipes)),
		NextID:  d.NextID,
	}
	for i, r := range d.Recipes {
		r.Ingredients = append(model.StringList(nil), r.Ingredients...)
		r.Instructions = append(model.StringList(nil), r.Instructions...)
		out.Recipes[i] = r
	}
	return out
}

// DocumentStore reads and writes the recipe collection as a single document.
// Every mutating repository operation incurs one full Load and one full Save.
type DocumentStore interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}
