package ports

import "go.trai.ch/taskid/internal/core/domain"

// Fingerprinter computes short stable digests of task ids and instances.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a fixed-width hexadecimal digest of the task id.
	Fingerprint(taskID string) string
	// InstanceFingerprint returns a digest covering every parameter of the instance.
	InstanceFingerprint(t *domain.TaskInstance) string
}
