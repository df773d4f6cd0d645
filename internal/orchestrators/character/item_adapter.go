package character

import (
	"context"

	"github.com/KirkDiggler/madking-api/internal/engine"
	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	"github.com/KirkDiggler/madking-api/internal/repositories/catalog"
)

// ItemAdapter lets the engine resolve items through the item catalog
type ItemAdapter struct {
	repo catalog.Repository[*entities.Item]
}

// NewItemAdapter creates a new item adapter
func NewItemAdapter(repo catalog.Repository[*entities.Item]) *ItemAdapter {
	return &ItemAdapter{repo: repo}
}

var _ engine.ItemResolver = (*ItemAdapter)(nil)

// ResolveItems loads the given item ids. Ids missing from the catalog are
// left out.
func (a *ItemAdapter) ResolveItems(ctx context.Context, ids []string) (map[string]*entities.Item, error) {
	if len(ids) == 0 {
		return map[string]*entities.Item{}, nil
	}

	out, err := a.repo.GetMany(ctx, catalog.GetManyInput{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve items")
	}
	return out.Entries, nil
}

func (o *Orchestrator) itemResolver() engine.ItemResolver {
	return NewItemAdapter(o.itemRepo)
}
