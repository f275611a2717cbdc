package ports

import "context"

// ProofUploader stores raw image bytes with an external service and returns
// a stable URL.
type ProofUploader interface {
	Upload(ctx context.Context, data []byte, name string) (string, error)
}
