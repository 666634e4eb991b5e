package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"story-video-service/application/ports/outbound"
	"story-video-service/config"
)

type s3VideoPublisher struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3VideoPublisher(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.VideoPublisherPort {
	return &s3VideoPublisher{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3VideoPublisher) Publish(ctx context.Context, req outbound.PublishVideoRequest) (*outbound.PublishVideoResponse, error) {
	key := s.getItemKey(req)

	file, err := os.Open(req.LocalPath)
	if err != nil {
		s.logger.Error(err, "failed to open video file for upload")
		return nil, err
	}

	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			s.logger.Error(err, "failed to close video file")
		}
	}(file)

	putInput := &s3.PutObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
		Body:   file,
	}

	if _, err = s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		s.logger.ErrorWithFields(err, "failed to upload video to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    key,
		})
		return nil, err
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, key)
	s.logger.InfoWithFields("uploaded video to S3", map[string]interface{}{
		"url": url,
	})

	return &outbound.PublishVideoResponse{
		Key:    key,
		URL:    url,
		Region: s.s3Config.Region,
	}, nil
}

func (s *s3VideoPublisher) Delete(ctx context.Context, key string) error {
	deleteInput := &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	}

	if _, err := s.s3Svc.DeleteObjectWithContext(ctx, deleteInput); err != nil {
		s.logger.ErrorWithFields(err, "failed to delete video from S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    key,
		})
		return err
	}
	return nil
}

func (s *s3VideoPublisher) getItemKey(req outbound.PublishVideoRequest) string {
	return fmt.Sprintf("%s/%s-%s", s.s3Config.KeyPrefix, req.RunID, filepath.Base(req.LocalPath))
}
