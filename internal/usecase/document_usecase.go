package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/internal/domain/service"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

// DocumentUseCase manages a client's personal document vault under
// documents/{uid}/ in blob storage.
type DocumentUseCase struct {
	storage      service.FileStorage
	activityRepo repository.ActivityRepository
}

func NewDocumentUseCase(storage service.FileStorage, activityRepo repository.ActivityRepository) *DocumentUseCase {
	return &DocumentUseCase{
		storage:      storage,
		activityRepo: activityRepo,
	}
}

func (uc *DocumentUseCase) vaultPrefix(uid string) string {
	return fmt.Sprintf("documents/%s/", uid)
}

func (uc *DocumentUseCase) Upload(ctx context.Context, uid, fileName string, content io.Reader, size int64, onProgress service.ProgressFunc) (string, error) {
	path := uc.vaultPrefix(uid) + fileName

	url, err := uc.storage.Upload(ctx, path, content, size, onProgress)
	if err != nil {
		return "", errors.UploadFailed(fmt.Sprintf("Error uploading %s", fileName), err)
	}

	activity := &entity.Activity{
		UserID:  uid,
		Message: fmt.Sprintf("Uploaded document: %s", fileName),
	}
	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		logger.Warn("Failed to record upload activity: %v", err)
	}

	return url, nil
}

func (uc *DocumentUseCase) List(ctx context.Context, uid string) ([]*entity.StoredFile, error) {
	return uc.storage.List(ctx, uc.vaultPrefix(uid))
}

// Delete removes a document, refusing paths outside the caller's vault.
func (uc *DocumentUseCase) Delete(ctx context.Context, uid, path string) error {
	if !strings.HasPrefix(path, uc.vaultPrefix(uid)) {
		return errors.Forbidden("You don't have permission to delete this document", nil)
	}

	if err := uc.storage.Delete(ctx, path); err != nil {
		return errors.Internal("Failed to delete document", err)
	}

	activity := &entity.Activity{
		UserID:  uid,
		Message: "Deleted a document",
	}
	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		logger.Warn("Failed to record delete activity: %v", err)
	}

	return nil
}
