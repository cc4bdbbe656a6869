package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/gateway/internal/api/metrics"
	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

// Navigator implements the category state machine:
//
//	unfiltered --Select(name)--> filtered(name)
//	filtered   --Select(name)--> filtered(name)
//	any        --Select("")----> unfiltered
//
// The selected category is the source of truth; the route is derived from it.
type Navigator struct {
	queries ports.QueryService
	views   *ViewStates
	log     zerolog.Logger
}

func NewNavigator(queries ports.QueryService, views *ViewStates, log zerolog.Logger) *Navigator {
	return &Navigator{queries: queries, views: views, log: log}
}

// Select moves the tab to filtered(name), or back to unfiltered for "".
func (n *Navigator) Select(ctx context.Context, tabID, categoryName string) (ports.Selection, error) {
	if categoryName == "" {
		n.views.Update(tabID, func(v *domain.ViewState) { v.SelectedCategory = "" })
		if err := n.queries.Clear(ctx, tabID, domain.KindCategory); err != nil {
			return ports.Selection{}, fmt.Errorf("select category: %w", err)
		}
		metrics.CategorySelectionsTotal.WithLabelValues("unfiltered").Inc()
		n.log.Debug().Str("tab", tabID).Msg("category selection cleared")
		return ports.Selection{}, nil
	}

	n.views.Update(tabID, func(v *domain.ViewState) { v.SelectedCategory = categoryName })
	pending := n.queries.Trigger(ctx, tabID, domain.CategoryKey(categoryName))
	nav := domain.CategoryRoute(categoryName)

	metrics.CategorySelectionsTotal.WithLabelValues("filtered").Inc()
	n.log.Debug().Str("tab", tabID).Str("category", categoryName).Msg("category selected")

	return ports.Selection{Navigation: &nav, Pending: pending}, nil
}

// Selected returns the tab's current category, "" when unfiltered.
func (n *Navigator) Selected(tabID string) string {
	return n.views.Get(tabID).SelectedCategory
}
