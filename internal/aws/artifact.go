/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/clapdb/clapctl/internal/provider"
)

// Release bucket object layout
const (
	latestTagKey  = "latest_tag"
	latestHashKey = "latest_hash"

	// defaultBucketPrefix combines with the region to form the default
	// release bucket name, e.g. clapdb-release-us-east-1
	defaultBucketPrefix = "clapdb-release"
)

// ArtifactStore answers version queries against the release object store
type ArtifactStore interface {
	// LatestTag returns the version tag the latest_tag marker points at
	LatestTag(ctx context.Context, bucket string) (string, error)

	// LatestHash returns the content hash the latest_hash marker points at
	LatestHash(ctx context.Context, bucket string) (string, error)

	// HasArtifact reports whether an artifact exists for the given version
	// and architecture
	HasArtifact(ctx context.Context, bucket, version string, arch provider.Architecture) (bool, error)
}

// BucketArtifactStore implements ArtifactStore against S3
type BucketArtifactStore struct {
	client S3Client
}

// NewBucketArtifactStore creates an artifact store backed by the given S3
// client
func NewBucketArtifactStore(client S3Client) *BucketArtifactStore {
	return &BucketArtifactStore{client: client}
}

var _ ArtifactStore = (*BucketArtifactStore)(nil)

// DefaultBucket derives the release bucket name for a region
func DefaultBucket(region string) string {
	return fmt.Sprintf("%s-%s", defaultBucketPrefix, region)
}

// artifactKey is the object key of a versioned, architecture-specific build
// package
func artifactKey(version string, arch provider.Architecture) string {
	return fmt.Sprintf("%s/%s/clapdb.tar.gz", version, arch)
}

// LatestTag reads the latest_tag marker object
func (s *BucketArtifactStore) LatestTag(ctx context.Context, bucket string) (string, error) {
	tag, err := s.readMarker(ctx, bucket, latestTagKey)
	if err != nil {
		return "", fmt.Errorf("bucket %s has no %s marker: %w", bucket, latestTagKey, err)
	}
	return tag, nil
}

// LatestHash reads the latest_hash marker object
func (s *BucketArtifactStore) LatestHash(ctx context.Context, bucket string) (string, error) {
	hash, err := s.readMarker(ctx, bucket, latestHashKey)
	if err != nil {
		return "", fmt.Errorf("bucket %s has no %s marker: %w", bucket, latestHashKey, err)
	}
	return hash, nil
}

// HasArtifact heads the artifact object for the given version and
// architecture. A missing object reports false, not an error.
func (s *BucketArtifactStore) HasArtifact(ctx context.Context, bucket, version string, arch provider.Architecture) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(artifactKey(version, arch)),
	})
	if err != nil {
		if isObjectNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check artifact %s/%s: %w", version, arch, err)
	}
	return true, nil
}

// readMarker fetches a small marker object and returns its trimmed content
func (s *BucketArtifactStore) readMarker(ctx context.Context, bucket, key string) (string, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", err
	}
	defer func() { _ = result.Body.Close() }()

	content, err := io.ReadAll(result.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}

	return strings.TrimSpace(string(content)), nil
}

// isObjectNotFound checks for the S3 not-found error classes
func isObjectNotFound(err error) bool {
	var notFound *s3types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchKey *s3types.NoSuchKey
	return errors.As(err, &noSuchKey)
}

// VersionResolver turns a user-supplied version token into a concrete,
// existence-verified version string. No lifecycle request may be submitted
// with an unresolved token.
type VersionResolver struct {
	store ArtifactStore
}

// NewVersionResolver creates a resolver over the given artifact store
func NewVersionResolver(store ArtifactStore) *VersionResolver {
	return &VersionResolver{store: store}
}

// Resolve maps the requested version token to a concrete version:
//
//	""        -> the tag the latest_tag marker points at
//	"latest"  -> the hash the latest_hash marker points at
//	anything  -> verified as-is against the store
//
// A token that verifies false fails with the action's flavour of not-found:
// deploy reports an invalid version, update reports a missing artifact.
// Store-access failures propagate immediately; there are no retries.
func (r *VersionResolver) Resolve(ctx context.Context, bucket, requested string, arch provider.Architecture, action provider.Action) (string, error) {
	switch requested {
	case "":
		return r.store.LatestTag(ctx, bucket)
	case "latest":
		return r.store.LatestHash(ctx, bucket)
	default:
		exists, err := r.store.HasArtifact(ctx, bucket, requested, arch)
		if err != nil {
			return "", err
		}
		if !exists {
			if action == provider.ActionUpdate {
				return "", &provider.ArtifactNotFoundError{Version: requested, Arch: arch, Bucket: bucket}
			}
			return "", &provider.InvalidVersionError{Version: requested, Arch: arch, Bucket: bucket}
		}
		return requested, nil
	}
}
