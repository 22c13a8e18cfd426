package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"balajee_back_end/internal/database"

	"github.com/minio/minio-go/v7"
)

// UploadFile envoie une image produit dans le bucket et retourne son URL publique
func UploadFile(bucket string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	_, err = database.MinIO.PutObject(context.Background(), bucket, file.Filename, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucket, file.Filename)
	return url, nil
}

// PresignedImageURL génère une URL temporaire de lecture (bucket privé)
func PresignedImageURL(ctx context.Context, bucket, object string) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}
	u, err := database.MinIO.PresignedGetObject(ctx, bucket, object, 15*time.Minute, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
