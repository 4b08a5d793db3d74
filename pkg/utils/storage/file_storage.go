package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	s3Client *s3.Client
	bucket   string
	region   string
)

func InitStorage(bucketName, awsRegion string) error {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	bucket = bucketName
	region = awsRegion
	return nil
}

// Ready reports whether the S3 client was initialized. Upload routes
// answer 503 when it was not.
func Ready() bool {
	return s3Client != nil
}

// UploadListingImage stores a processed image under the listing's key
// prefix and returns its public URL.
func UploadListingImage(ctx context.Context, buf *bytes.Buffer, contentType string, listingID int) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("storage not initialized")
	}

	ext := ".jpg"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[len(exts)-1]
	}
	key := fmt.Sprintf("listings/%d/%s%s", listingID, uuid.NewString(), ext)

	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload image: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key), nil
}
