package repository

import (
	"context"
	"io"
	"strconv"

	"harbormaster/internal/app/apperr"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// PhotoStore keeps one photo per ship in a MinIO bucket, keyed by ship id.
// The ships table is not touched.
type PhotoStore struct {
	client *minio.Client
	bucket string
}

func NewPhotoStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*PhotoStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		logrus.Infof("created bucket %s", bucket)
	}
	return &PhotoStore{client: client, bucket: bucket}, nil
}

func photoObject(shipID int) string {
	return "ships/" + strconv.Itoa(shipID) + "/photo"
}

// Put - uploads or replaces the ship's photo
func (p *PhotoStore) Put(ctx context.Context, shipID int, r io.Reader, size int64, contentType string) error {
	_, err := p.client.PutObject(ctx, p.bucket, photoObject(shipID), r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return apperr.Store("upload photo", err)
}

// Get - opens the ship's photo. The caller closes the reader.
func (p *PhotoStore) Get(ctx context.Context, shipID int) (io.ReadCloser, minio.ObjectInfo, error) {
	obj, err := p.client.GetObject(ctx, p.bucket, photoObject(shipID), minio.GetObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, apperr.Store("get photo", err)
	}
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, minio.ObjectInfo{}, apperr.NotFound("ship %d has no photo", shipID)
		}
		return nil, minio.ObjectInfo{}, apperr.Store("get photo", err)
	}
	return obj, info, nil
}

// Remove - deletes the ship's photo if there is one
func (p *PhotoStore) Remove(ctx context.Context, shipID int) error {
	return apperr.Store("remove photo", p.client.RemoveObject(ctx, p.bucket, photoObject(shipID), minio.RemoveObjectOptions{}))
}
