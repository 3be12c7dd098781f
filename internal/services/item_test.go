package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/askedal/trailpack/internal/models"
)

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projects := NewMockProjectReader(ctrl)
	writer := NewMockItemWriter(ctrl)
	svc := NewItemService(projects, writer)

	projects.EXPECT().GetByID(ctx, userID, int64(1)).Return(&models.ProjectDB{ProjectID: 1, UserID: userID}, nil)
	writer.EXPECT().Save(ctx, userID, int64(1), int64(10), "Tent", "3 person", 2.5, int64(4)).Return(int64(100), nil)

	itemID, err := svc.Create(ctx, userID, 1, 10, "Tent", "3 person", 2.5, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), itemID)
}

func TestItemService_Create_ProjectNotOwned(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projects := NewMockProjectReader(ctrl)
	svc := NewItemService(projects, nil)

	projects.EXPECT().GetByID(ctx, userID, int64(1)).Return(nil, nil)

	_, err := svc.Create(ctx, userID, 1, 10, "Tent", "", 2.5, 4)
	assert.Equal(t, ErrProjectNotFound, err)
}

func TestItemService_DeleteSet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockItemWriter(ctrl)
	svc := NewItemService(nil, writer)

	// Id 2 matches no row and is skipped, the rest of the set still runs
	writer.EXPECT().Delete(ctx, userID, int64(1), int64(1)).Return(int64(1), nil)
	writer.EXPECT().Delete(ctx, userID, int64(1), int64(2)).Return(int64(0), nil)
	writer.EXPECT().Delete(ctx, userID, int64(1), int64(3)).Return(int64(1), nil)

	deleted, err := svc.DeleteSet(ctx, userID, 1, []int64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestItemService_DeleteSet_Error(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockItemWriter(ctrl)
	svc := NewItemService(nil, writer)

	writer.EXPECT().Delete(ctx, userID, int64(1), int64(1)).Return(int64(1), nil)
	writer.EXPECT().Delete(ctx, userID, int64(1), int64(2)).Return(int64(0), errors.New("delete failed"))

	deleted, err := svc.DeleteSet(ctx, userID, 1, []int64{1, 2, 3})
	assert.EqualError(t, err, "delete failed")
	assert.Equal(t, int64(1), deleted)
}
