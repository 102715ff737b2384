package utils

import (
	"io"
	"mime/multipart"
	"net/http"

	storage_go "github.com/supabase-community/storage-go"

	"github.com/wolf6905/CCG3/src/core/config"
	"github.com/wolf6905/CCG3/src/core/database"
)

// UploadToSupabaseStorage uploads a file to Supabase storage and returns the file's public URL and content type.
func UploadToSupabaseStorage(cfg *config.Config, file *multipart.FileHeader, path string) (string, string, error) {
	// Initialize Supabase storage client
	storageClient, bucketName, err := database.SupabaseStorage(cfg)
	if err != nil {
		return "", "", err
	}

	// Open the file for reading
	fileBody, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer fileBody.Close()

	// Read the file contents
	fileBytes, err := io.ReadAll(fileBody)
	if err != nil {
		return "", "", err
	}

	// Reset the file pointer to the beginning
	_, err = fileBody.Seek(0, io.SeekStart)
	if err != nil {
		return "", "", err
	}

	// Detect content type based on file contents
	contentType := http.DetectContentType(fileBytes)

	// Upload the file to Supabase storage
	_, err = storageClient.UploadFile(bucketName, path, fileBody, storage_go.FileOptions{ContentType: &contentType})
	if err != nil {
		return "", "", err
	}

	// Get the public URL for the uploaded file
	response := storageClient.GetPublicUrl(bucketName, path)
	fileUrl := response.SignedURL

	return fileUrl, contentType, nil
}
