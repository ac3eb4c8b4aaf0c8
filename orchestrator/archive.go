package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"viralagent/common"
	"viralagent/types"
)

// Archiver writes run summaries to an S3 bucket as JSON, one object per run.
type Archiver struct {
	s3     *common.S3
	bucket string
	prefix string
}

// NewArchiver builds an archiver over an existing S3 wrapper.
func NewArchiver(s3 *common.S3, bucket, prefix string) *Archiver {
	return &Archiver{s3: s3, bucket: bucket, prefix: prefix}
}

// NewArchiverFromEnv builds an archiver from S3_BUCKET and friends, or returns
// nil when no bucket is configured so the orchestrator skips archiving.
func NewArchiverFromEnv() SummarySink {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil
	}

	s3, err := common.NewS3(context.Background(), common.S3Config{
		Region:       os.Getenv("S3_REGION"),
		Profile:      os.Getenv("S3_PROFILE"),
		UsePathStyle: os.Getenv("S3_USE_PATH_STYLE") == "true",
	})
	if err != nil {
		log.Printf("s3 setup failed; run summaries will not be archived: %v", err)
		return nil
	}

	return NewArchiver(s3, bucket, os.Getenv("S3_PREFIX"))
}

// ArchiveSummary uploads the summary under <prefix>runs/<run-id>.json.
func (a *Archiver) ArchiveSummary(ctx context.Context, summary types.RunSummary) error {
	body, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%sruns/%s.json", a.prefix, summary.RunID)
	if err := a.s3.Put(ctx, a.bucket, key, bytes.NewReader(body), "application/json"); err != nil {
		return fmt.Errorf("summary upload failed: %w", err)
	}

	log.Printf("run summary archived: s3://%s/%s", a.bucket, key)
	return nil
}
