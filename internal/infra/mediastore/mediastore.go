package mediastore

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Store обертка над Cloudinary для загрузки изображений: подтверждения оплаты
// и аватары пользователей
type Store struct {
	cld *cloudinary.Cloudinary
}

// New создает новый экземпляр хранилища медиафайлов
func New(cloudName, apiKey, apiSecret string) (*Store, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: New - init client: %v", ErrInitClient, err)
	}
	return &Store{cld: cld}, nil
}

// Upload загружает локальный файл в указанную папку и возвращает постоянный URL
func (s *Store) Upload(ctx context.Context, localPath, folder, publicID string) (string, error) {
	params := uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	}

	result, err := s.cld.Upload.Upload(ctx, localPath, params)
	if err != nil {
		return "", fmt.Errorf("%w: Upload - upload file: %v", ErrUploadFailed, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: Upload - empty secure URL in response", ErrUploadFailed)
	}

	return result.SecureURL, nil
}

// Delete удаляет файл по его public ID
func (s *Store) Delete(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("%w: Delete - destroy file: %v", ErrDeleteFailed, err)
	}
	return nil
}
