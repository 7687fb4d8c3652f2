package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentUploadLandsInOwnerVault(t *testing.T) {
	storage := &fakeStorage{}
	activityRepo := &fakeActivityRepo{}
	uc := NewDocumentUseCase(storage, activityRepo)

	url, err := uc.Upload(context.Background(), "c1", "syllabus.pdf", strings.NewReader("data"), 4, nil)
	require.NoError(t, err)

	require.Len(t, storage.uploads, 1)
	assert.Equal(t, "documents/c1/syllabus.pdf", storage.uploads[0].path)
	assert.Equal(t, "https://files.test/documents/c1/syllabus.pdf", url)

	require.Len(t, activityRepo.activities, 1)
	assert.Equal(t, "Uploaded document: syllabus.pdf", activityRepo.activities[0].Message)
}

func TestDocumentDeleteRefusesForeignPath(t *testing.T) {
	storage := &fakeStorage{}
	uc := NewDocumentUseCase(storage, &fakeActivityRepo{})

	err := uc.Delete(context.Background(), "c1", "documents/c2/secret.pdf")

	require.Error(t, err)
	assert.Empty(t, storage.deletes)
}

func TestDocumentDeleteRemovesOwnFile(t *testing.T) {
	storage := &fakeStorage{}
	activityRepo := &fakeActivityRepo{}
	uc := NewDocumentUseCase(storage, activityRepo)

	err := uc.Delete(context.Background(), "c1", "documents/c1/old.pdf")
	require.NoError(t, err)

	require.Len(t, storage.deletes, 1)
	assert.Equal(t, "documents/c1/old.pdf", storage.deletes[0])

	require.Len(t, activityRepo.activities, 1)
	assert.Equal(t, "Deleted a document", activityRepo.activities[0].Message)
}
