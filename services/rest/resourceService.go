// Package rest implements ResourceService on top of the REST backend
package rest

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

type restResourceService struct {
	logger *zap.Logger
	cfg    *config.AppConfig
	client upstream.Client
}

// NewRestResourceService creates a new ResourceService that reads resources from the REST backend
func NewRestResourceService(logger *zap.Logger, cfg *config.AppConfig, client upstream.Client) services.ResourceService {
	return &restResourceService{
		logger: logger,
		cfg:    cfg,
		client: client,
	}
}

func (s *restResourceService) endpoint(session entities.Session, resource resources.Resource) (string, error) {
	if !resource.AllowedFor(session.Roles) {
		return "", errors.Wrap(services.ErrResourceForbidden, resource.Key())
	}
	return resource.EndpointFor(session.EmployeeID)
}

func (s *restResourceService) fetch(ctx context.Context, session entities.Session, resource resources.Resource) ([]entities.Record, error) {
	endpoint, err := s.endpoint(session, resource)
	if err != nil {
		return nil, err
	}

	records, err := s.client.List(ctx, session.UpstreamToken, endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "could not fetch %s", resource.Key())
	}
	return records, nil
}

func (s *restResourceService) List(ctx context.Context, session entities.Session, resource resources.Resource, query services.ListQuery) (*services.ListResult, error) {
	if len(query.Sort) > 0 {
		if _, ok := resource.Field(query.Sort); !ok {
			return nil, errors.Wrap(resources.ErrUnknownField, query.Sort)
		}
	}

	records, err := s.fetch(ctx, session, resource)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		resources.Normalize(record, resource.Fields)
	}

	rows := resources.Filter(records, query.Search, resource.SearchableFields())
	if len(query.Sort) > 0 {
		rows, err = resources.Sort(rows, resource, query.Sort, query.Desc)
		if err != nil {
			return nil, err
		}
	}

	page, pageSize := resources.ClampPage(query.Page, query.PageSize, s.cfg.Pagination.DefaultPageSize, s.cfg.Pagination.MaxPageSize)

	return &services.ListResult{
		Rows: rows,
		Page: resources.Paginate(rows, page, pageSize),
	}, nil
}

func (s *restResourceService) Get(ctx context.Context, session entities.Session, resource resources.Resource, id string) (entities.Record, error) {
	if len(id) == 0 {
		return nil, services.ErrInvalidID
	}
	if !resource.AllowedFor(session.Roles) {
		return nil, errors.Wrap(services.ErrResourceForbidden, resource.Key())
	}

	endpoint, ok, err := resource.ItemEndpointFor(session.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.find(ctx, session, resource, id)
	}

	record, err := s.client.Get(ctx, session.UpstreamToken, endpoint, id)
	if err != nil {
		return nil, errors.Wrapf(err, "could not fetch %s item", resource.Key())
	}

	return resources.Normalize(record, resource.Fields), nil
}

// find picks the item out of the collection for resources without an item route
func (s *restResourceService) find(ctx context.Context, session entities.Session, resource resources.Resource, id string) (entities.Record, error) {
	records, err := s.fetch(ctx, session, resource)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if resource.IDOf(record) == id {
			return resources.Normalize(record, resource.Fields), nil
		}
	}
	return nil, errors.Wrapf(services.ErrNotFound, "%s item %s", resource.Key(), id)
}

// Counts fetches the number of records of every resource at the same time.
// A failing resource reports its error in its own Count.
func (s *restResourceService) Counts(ctx context.Context, session entities.Session, list []resources.Resource) []services.Count {
	counts := make([]services.Count, len(list))

	concurrency := s.cfg.Dashboard.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs error
	)
	g.SetLimit(concurrency)

	for i, resource := range list {
		i, resource := i, resource
		counts[i] = services.Count{
			Module: resource.Module,
			Name:   resource.Name,
			Title:  resource.Title,
		}

		g.Go(func() error {
			records, err := s.fetch(ctx, session, resource)
			if err != nil {
				counts[i].Error = errors.Cause(err).Error()
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
				return nil
			}
			counts[i].Count = len(records)
			return nil
		})
	}
	_ = g.Wait()

	if errs != nil {
		s.logger.Warn("could not count every resource", zap.String("email", session.Email), zap.Error(errs))
	}

	return counts
}
