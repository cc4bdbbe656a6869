package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

// DefaultDisplayWindow is how many products the primary region of the
// unfiltered listing shows before the rest spill into the secondary region.
const DefaultDisplayWindow = 12

// StorefrontService turns query results and view state into page views.
type StorefrontService struct {
	queries   ports.QueryService
	navigator ports.Navigator
	views     *ViewStates
	window    int
	log       zerolog.Logger
}

func NewStorefrontService(
	queries ports.QueryService,
	navigator ports.Navigator,
	views *ViewStates,
	window int,
	log zerolog.Logger,
) *StorefrontService {
	if window <= 0 {
		window = DefaultDisplayWindow
	}
	return &StorefrontService{
		queries:   queries,
		navigator: navigator,
		views:     views,
		window:    window,
		log:       log,
	}
}

// Page enables the always-on queries (all items, categories), waits for any
// fetch it started, and renders the tab's current view. If ctx ends first the
// view is rendered with whatever is loaded.
func (s *StorefrontService) Page(ctx context.Context, tabID string) (*domain.PageView, error) {
	g, gctx := errgroup.WithContext(ctx)
	for _, key := range []domain.QueryKey{domain.AllItemsKey(), domain.CategoriesKey()} {
		pending := s.queries.Enable(gctx, tabID, key)
		if pending == nil {
			continue
		}
		g.Go(func() error {
			_, err := Await(gctx, pending)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Debug().Err(err).Str("tab", tabID).Msg("rendering before queries completed")
	}
	return s.render(ctx, tabID), nil
}

// Search records term as the tab's active search and fetches it. An empty
// term ends the search and the view falls back to the unfiltered listing.
func (s *StorefrontService) Search(ctx context.Context, tabID, term string) (*domain.PageView, error) {
	s.views.Update(tabID, func(v *domain.ViewState) { v.SearchTerm = term })
	if term == "" {
		return s.Page(ctx, tabID)
	}

	if _, err := Await(ctx, s.queries.Trigger(ctx, tabID, domain.SearchKey(term))); err != nil {
		s.log.Debug().Err(err).Str("tab", tabID).Str("term", term).Msg("search still in flight")
	}
	return s.Page(ctx, tabID)
}

// SelectCategory runs the navigator transition and renders the result.
func (s *StorefrontService) SelectCategory(ctx context.Context, tabID, categoryName string) (*domain.Navigation, *domain.PageView, error) {
	sel, err := s.navigator.Select(ctx, tabID, categoryName)
	if err != nil {
		return nil, nil, err
	}
	if sel.Pending != nil {
		if _, err := Await(ctx, sel.Pending); err != nil {
			s.log.Debug().Err(err).Str("tab", tabID).Str("category", categoryName).Msg("category fetch still in flight")
		}
	}
	view, err := s.Page(ctx, tabID)
	if err != nil {
		return nil, nil, err
	}
	return sel.Navigation, view, nil
}

// OpenCategory serves a direct visit to a category route. The visit goes
// through the navigator unless it already points at the selected category.
func (s *StorefrontService) OpenCategory(ctx context.Context, tabID, categoryName string) (*domain.PageView, error) {
	if s.navigator.Selected(tabID) == categoryName {
		return s.Page(ctx, tabID)
	}
	_, view, err := s.SelectCategory(ctx, tabID, categoryName)
	return view, err
}

// Categories returns the category list, fetching it on first use.
func (s *StorefrontService) Categories(ctx context.Context, tabID string) (domain.QueryResult, error) {
	return s.enabled(ctx, tabID, domain.CategoriesKey())
}

// AdminProducts returns the unwindowed product list for the admin view.
func (s *StorefrontService) AdminProducts(ctx context.Context, tabID string) (domain.QueryResult, error) {
	return s.enabled(ctx, tabID, domain.AllItemsKey())
}

// Reset drops the tab's view state and cached results.
func (s *StorefrontService) Reset(ctx context.Context, tabID string) error {
	s.views.Reset(tabID)
	if err := s.queries.Forget(ctx, tabID); err != nil {
		return fmt.Errorf("reset tab: %w", err)
	}
	return nil
}

func (s *StorefrontService) enabled(ctx context.Context, tabID string, key domain.QueryKey) (domain.QueryResult, error) {
	if pending := s.queries.Enable(ctx, tabID, key); pending != nil {
		if _, err := Await(ctx, pending); err != nil {
			return domain.QueryResult{}, err
		}
	}
	return s.queries.Result(ctx, tabID, key), nil
}

func (s *StorefrontService) render(ctx context.Context, tabID string) *domain.PageView {
	state := s.views.Get(tabID)
	in := renderInput{
		state:      state,
		all:        s.queries.Result(ctx, tabID, domain.AllItemsKey()),
		categories: s.queries.Result(ctx, tabID, domain.CategoriesKey()),
	}
	if state.SearchTerm != "" {
		in.search = s.queries.Result(ctx, tabID, domain.SearchKey(state.SearchTerm))
	}
	if state.Filtered() {
		in.category = s.queries.Result(ctx, tabID, domain.CategoryKey(state.SelectedCategory))
	}
	view := compose(in, s.window)
	return &view
}

type renderInput struct {
	state      domain.ViewState
	all        domain.QueryResult
	search     domain.QueryResult
	category   domain.QueryResult
	categories domain.QueryResult
}

// compose applies the display precedence: an active search wins, then a
// selected category, then the unfiltered listing split at window.
func compose(in renderInput, window int) domain.PageView {
	view := domain.PageView{
		Categories:       in.categories.Categories,
		SelectedCategory: in.state.SelectedCategory,
		SearchTerm:       in.state.SearchTerm,
		Secondary:        []domain.Product{},
	}
	if view.Categories == nil {
		view.Categories = []domain.Category{}
	}

	switch {
	case in.state.SearchTerm != "":
		view.Mode = domain.ModeSearch
		fill(&view, in.search)
	case in.state.Filtered():
		view.Mode = domain.ModeCategory
		fill(&view, in.category)
	default:
		view.Mode = domain.ModeAll
		fill(&view, in.all)
		view.Primary, view.Secondary = Window(view.Primary, window)
	}
	return view
}

func fill(view *domain.PageView, res domain.QueryResult) {
	view.Status = res.Status
	view.Primary = []domain.Product{}

	switch res.Status {
	case domain.StatusSuccess:
		if len(res.Products) == 0 {
			view.NotFound = true
			view.Message = domain.MessageNotFound
			return
		}
		view.Primary = res.Products
	case domain.StatusError:
		view.Message = domain.MessageQueryFailed
	case domain.StatusLoading:
		if res.Products != nil {
			view.Primary = res.Products
		}
	}
}

// Window splits products into the first n and the rest. Both slices are
// fresh copies and together hold every product exactly once, in order.
func Window(products []domain.Product, n int) (head, tail []domain.Product) {
	if n < 0 {
		n = 0
	}
	if n > len(products) {
		n = len(products)
	}
	head = append([]domain.Product{}, products[:n]...)
	tail = append([]domain.Product{}, products[n:]...)
	return head, tail
}
