// Package domain contains the task identity model: parameter kinds and their
// string codec, parameter and task descriptors, task instances and the catalog
// that indexes descriptors by task name.
package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Catalog indexes task descriptors by task name.
type Catalog struct {
	tasks map[InternedString]*TaskDescriptor
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tasks: make(map[InternedString]*TaskDescriptor),
	}
}

// Register adds a descriptor to the catalog.
// It returns an error if a task with the same name is already registered.
func (c *Catalog) Register(d *TaskDescriptor) error {
	if _, exists := c.tasks[d.name]; exists {
		return zerr.With(ErrTaskAlreadyExists, "task_name", d.Name())
	}
	c.tasks[d.name] = d
	return nil
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (*TaskDescriptor, error) {
	d, ok := c.tasks[NewInternedString(name)]
	if !ok {
		return nil, zerr.With(ErrTaskNotFound, "task_name", name)
	}
	return d, nil
}

// Names returns the registered task names in ascending order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.tasks))
	for name := range c.tasks {
		names = append(names, name.String())
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered tasks.
func (c *Catalog) Len() int {
	return len(c.tasks)
}
