package domain

import (
	"fmt"
	"strings"
	"time"
)

// QueryKind names one of the backend reads the storefront issues.
type QueryKind string

const (
	KindAllItems   QueryKind = "items"
	KindCategories QueryKind = "categories"
	KindSearch     QueryKind = "search"
	KindCategory   QueryKind = "category"
)

// QueryKey identifies one backend read and its cached result.
type QueryKey struct {
	Kind QueryKind
	Arg  string
}

func AllItemsKey() QueryKey   { return QueryKey{Kind: KindAllItems, Arg: "all"} }
func CategoriesKey() QueryKey { return QueryKey{Kind: KindCategories, Arg: "all"} }

func SearchKey(term string) QueryKey { return QueryKey{Kind: KindSearch, Arg: term} }

func CategoryKey(name string) QueryKey { return QueryKey{Kind: KindCategory, Arg: name} }

// String renders the key as "<kind>:<arg>", e.g. "search:shoes".
func (k QueryKey) String() string {
	return string(k.Kind) + ":" + k.Arg
}

// ParseQueryKey is the inverse of QueryKey.String.
func ParseQueryKey(s string) (QueryKey, error) {
	kind, arg, ok := strings.Cut(s, ":")
	if !ok {
		return QueryKey{}, fmt.Errorf("query key %q: missing kind separator", s)
	}
	switch k := QueryKind(kind); k {
	case KindAllItems, KindCategories, KindSearch, KindCategory:
		return QueryKey{Kind: k, Arg: arg}, nil
	default:
		return QueryKey{}, fmt.Errorf("query key %q: unknown kind", s)
	}
}

// QueryStatus is the lifecycle state of a QueryResult.
type QueryStatus string

const (
	StatusIdle    QueryStatus = "idle"
	StatusLoading QueryStatus = "loading"
	StatusSuccess QueryStatus = "success"
	StatusError   QueryStatus = "error"
)

// QueryResult is the latest outcome for one query key. A re-fetch replaces
// it wholesale; results are never merged.
type QueryResult struct {
	Key        QueryKey
	Status     QueryStatus
	Products   []Product
	Categories []Category
	Err        error
	Generation uint64
	UpdatedAt  time.Time
}

// IdleResult is what a key reports before it has ever been triggered.
func IdleResult(key QueryKey) QueryResult {
	return QueryResult{Key: key, Status: StatusIdle}
}
