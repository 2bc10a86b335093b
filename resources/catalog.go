package resources

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/config/role"
)

// Catalog is the registry of every resource bizdash can display
type Catalog struct {
	resources map[string]Resource
	order     []string
}

// NewCatalog creates a Catalog from the given resources, keeping their order
func NewCatalog(resources ...Resource) (*Catalog, error) {
	catalog := &Catalog{
		resources: make(map[string]Resource, len(resources)),
		order:     make([]string, 0, len(resources)),
	}

	for _, resource := range resources {
		if len(resource.Module) == 0 || len(resource.Name) == 0 {
			return nil, errors.Wrap(ErrUnknownResource, fmt.Sprintf("resource %q has no module or name", resource.Key()))
		}
		if _, exists := catalog.resources[resource.Key()]; exists {
			return nil, errors.Wrap(ErrDuplicateResource, resource.Key())
		}
		catalog.resources[resource.Key()] = resource
		catalog.order = append(catalog.order, resource.Key())
	}

	return catalog, nil
}

// Get returns the resource with the given module and name
func (c *Catalog) Get(module, name string) (Resource, error) {
	resource, ok := c.resources[module+"/"+name]
	if !ok {
		return Resource{}, errors.Wrap(ErrUnknownResource, fmt.Sprintf("%s/%s", module, name))
	}
	return resource, nil
}

// All returns every resource in catalog order
func (c *Catalog) All() []Resource {
	all := make([]Resource, 0, len(c.order))
	for _, key := range c.order {
		all = append(all, c.resources[key])
	}
	return all
}

// Module returns the resources of the given module
func (c *Catalog) Module(module string) []Resource {
	var resources []Resource
	for _, resource := range c.All() {
		if resource.Module == module {
			resources = append(resources, resource)
		}
	}
	return resources
}

// VisibleTo returns the resources a user with the given roles may access
func (c *Catalog) VisibleTo(roles []role.UserRole) []Resource {
	var resources []Resource
	for _, resource := range c.All() {
		if resource.AllowedFor(roles) {
			resources = append(resources, resource)
		}
	}
	return resources
}

// ModuleVisibleTo returns the resources of the given module a user with the given roles may access
func (c *Catalog) ModuleVisibleTo(module string, roles []role.UserRole) []Resource {
	var resources []Resource
	for _, resource := range c.Module(module) {
		if resource.AllowedFor(roles) {
			resources = append(resources, resource)
		}
	}
	return resources
}
