package repository

import "time"

// CatalogFilter narrows catalog listings for one branch.
type CatalogFilter struct {
	Page       int
	PageSize   int
	Search     string
	OnlyActive bool
}

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	Page        int
	PageSize    int
	BranchID    uint
	Status      string
	OrderNo     string
	Channel     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
