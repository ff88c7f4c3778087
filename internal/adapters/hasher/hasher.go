// Package hasher fingerprints task ids with XXHash.
package hasher

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/taskid/internal/core/domain"
	"go.trai.ch/taskid/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher computes XXHash digests of task ids and instance keys.
type Hasher struct{}

// New creates a new Hasher.
func New() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the 16-digit hexadecimal XXHash of a task id.
func (h *Hasher) Fingerprint(taskID string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(taskID))
}

// InstanceFingerprint hashes every parameter of an instance, not only the
// significant ones, so it distinguishes instances that share a task id.
func (h *Hasher) InstanceFingerprint(t *domain.TaskInstance) string {
	d := xxhash.New()
	_, _ = d.WriteString(t.Key())
	return fmt.Sprintf("%016x", d.Sum64())
}
