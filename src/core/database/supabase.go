package database

import (
	"errors"

	storage_go "github.com/supabase-community/storage-go"

	"github.com/wolf6905/CCG3/src/core/config"
)

// SupabaseStorage initializes the storage client and bucket name
func SupabaseStorage(cfg *config.Config) (*storage_go.Client, string, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" || cfg.BucketName == "" {
		return nil, "", errors.New("missing SUPABASE_URL, SUPABASE_KEY, or BUCKET_NAME in environment variables")
	}

	storageClient := storage_go.NewClient(cfg.SupabaseURL+"/storage/v1/s3", cfg.SupabaseKey, nil)
	return storageClient, cfg.BucketName, nil
}
