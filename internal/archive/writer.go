// Package archive writes the immutable audit copy of every processed
// submission to an append-only object store.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/malimedia/campaign-entries/internal/lead"
)

// Writer persists one archival record per invocation. Records are
// write-once; nothing in the pipeline reads them back.
type Writer interface {
	Archive(ctx context.Context, rec lead.ArchiveRecord) error
}

// ObjectKey builds the deterministic storage key for an archival record:
// leads/{campaign}/{timestamp}_{email}.json. Uniqueness relies on the
// microsecond timestamp + email combination; concurrent submissions for
// the same email within the same microsecond can collide. That window is
// an accepted property of the key scheme.
func ObjectKey(campaignShortName, timestamp, email string) string {
	return fmt.Sprintf("leads/%s/%s_%s.json", campaignShortName, timestamp, email)
}

// S3Writer writes archival records to an S3 bucket with private access
// and JSON content type.
type S3Writer struct {
	client *s3.Client
	bucket string
}

// NewS3Writer creates a writer targeting the given bucket.
func NewS3Writer(client *s3.Client, bucket string) *S3Writer {
	return &S3Writer{client: client, bucket: bucket}
}

// Archive serializes the record and puts it under its deterministic key.
func (w *S3Writer) Archive(ctx context.Context, rec lead.ArchiveRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling archive record: %w", err)
	}

	key := ObjectKey(rec.Campaign.ShortName, rec.Meta.TimeStamp, rec.Data["email"])

	_, err = w.client.PutObject(ctx, &s3.PutObjectInput{
		ACL:         s3types.ObjectCannedACLPrivate,
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("putting archive record to S3: %w", err)
	}
	return nil
}
