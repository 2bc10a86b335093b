package services

import (
	"context"

	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/resources"
)

// ListQuery describes which records of a resource are requested
type ListQuery struct {
	Search   string
	Sort     string
	Desc     bool
	Page     int
	PageSize int
}

// ListResult holds the records of a resource that match a ListQuery.
// Rows is the full filtered set, Page the requested slice of it.
type ListResult struct {
	Rows []entities.Record
	Page resources.Page
}

// Count is the number of records of a single resource shown on the dashboard
type Count struct {
	Module string `json:"module"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}

// ResourceService is the service for reading resources from the REST backend on behalf of a session
type ResourceService interface {
	List(ctx context.Context, session entities.Session, resource resources.Resource, query ListQuery) (*ListResult, error)
	Get(ctx context.Context, session entities.Session, resource resources.Resource, id string) (entities.Record, error)
	Counts(ctx context.Context, session entities.Session, list []resources.Resource) []Count
}
