// Package storage ships finished dataset artifacts to S3 so training
// machines can pull them without access to the raw MIDI corpus.
package storage

import (
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
)

// UploadArtifacts puts each file at the bucket root, keyed by its base
// name. Credentials and region come from the usual AWS environment.
func UploadArtifacts(bucket string, paths []string) error {
	sess, err := session.NewSession(&aws.Config{})
	if err != nil {
		return errors.Wrap(err, "could not create an AWS session")
	}

	client := s3.New(sess)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "could not open artifact %v", path)
		}

		_, err = client.PutObject(&s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(filepath.Base(path)),
			Body:   f,
		})
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "could not upload %v", path)
		}
	}
	return nil
}
