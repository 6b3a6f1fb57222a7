package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/config"
)

type s3EpisodePublisher struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3EpisodePublisher(logger outbound.LoggerPort, s3Config *config.S3Config) (outbound.EpisodePublisherPort, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(s3Config.Region)})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}
	return &s3EpisodePublisher{
		logger:   logger,
		s3Svc:    s3.New(sess),
		s3Config: s3Config,
	}, nil
}

// Publish uploads each artifact under episodes/<episode-id>/. Local files are
// left in place; the upload is a copy, not a move.
func (p *s3EpisodePublisher) Publish(ctx context.Context, req outbound.PublishEpisodeRequest) (*outbound.PublishEpisodeResponse, error) {
	keys := make([]string, 0, len(req.FileNames))

	for _, fileName := range req.FileNames {
		key, err := p.publishFile(ctx, req.EpisodeID, fileName)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	p.logger.InfoWithFields("Episode bundle published", map[string]interface{}{
		"bucket": p.s3Config.BucketName,
		"files":  len(keys),
	})

	return &outbound.PublishEpisodeResponse{
		Keys:        keys,
		StoreRegion: p.s3Config.Region,
	}, nil
}

func (p *s3EpisodePublisher) publishFile(ctx context.Context, episodeID string, fileName string) (string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		p.logger.Error(err, "Failed to open artifact file")
		return "", err
	}

	defer func() {
		if err := file.Close(); err != nil {
			p.logger.Error(err, "Failed to close artifact file")
		}
	}()

	key := fmt.Sprintf("episodes/%s/%s", episodeID, filepath.Base(fileName))
	_, err = p.s3Svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.s3Config.BucketName),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to upload artifact to S3", map[string]interface{}{
			"key": key,
		})
		return "", err
	}

	return key, nil
}
