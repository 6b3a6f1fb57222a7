package config

import (
	"fmt"
	"os"
)

type S3Config struct {
	BucketName string
	Region     string
}

// GetS3Config reads the optional episode-publish target. Returning an error
// when the bucket is unset lets the caller treat publishing as disabled.
func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("EPISODE_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("EPISODE_BUCKET_NAME must be set")
	}
	region := os.Getenv("EPISODE_BUCKET_REGION")
	if region == "" {
		return nil, fmt.Errorf("EPISODE_BUCKET_REGION must be set")
	}
	return &S3Config{
		BucketName: bucketName,
		Region:     region,
	}, nil
}
