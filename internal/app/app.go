// Package app implements the application layer for taskid.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"go.trai.ch/taskid/internal/core/domain"
	"go.trai.ch/taskid/internal/core/flatten"
	"go.trai.ch/taskid/internal/core/ports"
	"go.trai.ch/taskid/internal/engine/taskid"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogPath is the catalog file used when none is configured.
const DefaultCatalogPath = "taskid.yaml"

// App represents the main application logic.
type App struct {
	loader        ports.CatalogLoader
	logger        ports.Logger
	fingerprinter ports.Fingerprinter
	telemetry     ports.Telemetry
	catalogPath   string
}

// New creates a new App instance.
func New(
	loader ports.CatalogLoader,
	logger ports.Logger,
	fingerprinter ports.Fingerprinter,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:        loader,
		logger:        logger,
		fingerprinter: fingerprinter,
		telemetry:     telemetry,
		catalogPath:   DefaultCatalogPath,
	}
}

// WithCatalogPath sets the catalog file read by catalog-backed operations.
func (a *App) WithCatalogPath(path string) *App {
	a.catalogPath = path
	return a
}

// Resolution is the outcome of resolving one task id against the catalog.
type Resolution struct {
	// Input is the task id as given.
	Input string
	// ID is the canonical task id of the reconstructed instance.
	ID string
	// Fingerprint is the digest of ID.
	Fingerprint string
	// InstanceFingerprint is the digest over all parameters of the instance.
	InstanceFingerprint string
	// Instance is the reconstructed task.
	Instance *domain.TaskInstance
	// Duplicate is set when an earlier input resolved to an equal instance.
	Duplicate bool
}

// Tasks returns the descriptors declared in the catalog, sorted by name.
func (a *App) Tasks() ([]*domain.TaskDescriptor, error) {
	catalog, err := a.loadCatalog()
	if err != nil {
		return nil, err
	}

	names := catalog.Names()
	out := make([]*domain.TaskDescriptor, 0, len(names))
	for _, name := range names {
		desc, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, desc)
	}
	return out, nil
}

// Encode builds a task from key=value arguments and returns its canonical task id.
// Values use the task id literal syntax, so lists are written as [a,b].
func (a *App) Encode(taskName string, args []string) (string, error) {
	catalog, err := a.loadCatalog()
	if err != nil {
		return "", err
	}

	raw := make(domain.RawParams, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return "", zerr.With(zerr.New("argument must have the form key=value"), "argument", arg)
		}
		rv, err := taskid.ParseValue(value)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "invalid argument value"), "argument", arg)
		}
		raw[key] = rv
	}

	inst, err := taskid.Load(catalog, taskName, raw)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to build task"), "task_name", taskName)
	}
	return taskid.EncodeInstance(inst), nil
}

// Parse splits a task id into its name and raw parameters. It needs no catalog.
func (a *App) Parse(id string) (string, domain.RawParams, error) {
	return taskid.Parse(id)
}

// Resolve reconstructs every task id against the catalog concurrently and
// returns the results in input order. Inputs that resolve to an instance equal
// to an earlier one are flagged as duplicates.
func (a *App) Resolve(ctx context.Context, ids []string) ([]Resolution, error) {
	catalog, err := a.loadCatalog()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
		}
	}()

	results := make([]Resolution, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			_, vertex := a.telemetry.Record(ctx, id)
			inst, err := taskid.FromID(catalog, id)
			vertex.Complete(err)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to resolve task id"), "task_id", id)
			}

			canonical := taskid.EncodeInstance(inst)
			_, _ = fmt.Fprintln(vertex.Stdout(), canonical)

			results[i] = Resolution{
				Input:               id,
				ID:                  canonical,
				Fingerprint:         a.fingerprinter.Fingerprint(canonical),
				InstanceFingerprint: a.fingerprinter.InstanceFingerprint(inst),
				Instance:            inst,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(results))
	for i := range results {
		key := results[i].Instance.Key()
		if _, ok := seen[key]; ok {
			results[i].Duplicate = true
			continue
		}
		seen[key] = struct{}{}
	}

	a.logger.Info(fmt.Sprintf("resolved %d task ids, %d unique", len(results), len(seen)))

	return results, nil
}

// Flatten reads a YAML or JSON document and returns its leaves in traversal order.
func (a *App) Flatten(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read document"), "path", path)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse document"), "path", path)
	}

	return flatten.Strings(doc)
}

func (a *App) loadCatalog() (*domain.Catalog, error) {
	catalog, err := a.loader.Load(a.catalogPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load catalog")
	}
	return catalog, nil
}
