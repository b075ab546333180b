package objstore

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.source.s3"

func init() {
	// Registered as the concrete type: the app layer wires one Source
	// per repository kind, so the nodes must stay distinguishable.
	graft.Register(graft.Node[*Source]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Source, error) {
			return NewSource(credentialsFromEnv()), nil
		},
	})
}

// credentialsFromEnv reads the static access pair from the environment.
// HAUL_S3_* takes precedence over the standard AWS variables.
func credentialsFromEnv() Credentials {
	access := os.Getenv("HAUL_S3_ACCESS_KEY")
	if access == "" {
		access = os.Getenv("AWS_ACCESS_KEY_ID")
	}

	secret := os.Getenv("HAUL_S3_SECRET_KEY")
	if secret == "" {
		secret = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}

	return Credentials{AccessKey: access, SecretKey: secret}
}
