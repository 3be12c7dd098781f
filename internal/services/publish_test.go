package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/askedal/trailpack/internal/models"
)

func TestPublishService_Publish(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserReader(ctrl)
	projects := NewMockProjectReader(ctrl)
	lists := NewMockListReader(ctrl)
	items := NewMockItemReader(ctrl)
	explore := NewMockExploreWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	project := &models.ProjectDB{ProjectID: 1, UserID: userID, ProjectName: "Trip"}
	camping := models.ListDB{ListID: 10, UserID: userID, ProjectID: 1, ListName: "Camping"}
	clothes := models.ListDB{ListID: 11, UserID: userID, ProjectID: 1, ListName: "Clothes"}
	tent := models.ItemDB{ItemID: 100, UserID: userID, ProjectID: 1, ListID: 10, ItemName: "Tent", Weight: 2.5, Quantity: 4}

	projects.EXPECT().GetByID(ctx, userID, int64(1)).Return(project, nil)
	lists.EXPECT().ListByProject(ctx, userID, int64(1)).Return([]models.ListDB{camping, clothes}, nil)
	items.EXPECT().ListByProject(ctx, userID, int64(1)).Return([]models.ItemDB{tent}, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "john"}, nil)

	explore.EXPECT().SaveProject(ctx, userID, "john", "Trip", nil).Return(int64(77), nil)
	explore.EXPECT().SaveList(ctx, userID, int64(77), camping, "Trip").Return(nil)
	explore.EXPECT().SaveItem(ctx, userID, int64(77), tent).Return(nil)
	explore.EXPECT().SaveList(ctx, userID, int64(77), clothes, "Trip").Return(nil)

	var event models.ShareEvent
	kafkaWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.Len(t, msgs, 1)
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			return nil
		})

	svc := NewPublishService(users, projects, lists, items, explore, kafkaWriter)
	exploreProjectID, err := svc.Publish(ctx, userID, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(77), exploreProjectID)
	assert.Equal(t, "john", event.Username)
	assert.Equal(t, int64(1), event.ProjectID)
	assert.Equal(t, int64(77), event.ExploreProjectID)
	assert.Equal(t, 10.0, event.TotalWeight)
}

func TestPublishService_Publish_NotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projects := NewMockProjectReader(ctrl)
	svc := NewPublishService(nil, projects, nil, nil, nil, nil)

	projects.EXPECT().GetByID(ctx, userID, int64(999)).Return(nil, nil)

	_, err := svc.Publish(ctx, userID, 999)
	assert.Equal(t, ErrProjectNotFound, err)
}

func TestPublishService_Publish_NilKafkaWriter(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserReader(ctrl)
	projects := NewMockProjectReader(ctrl)
	lists := NewMockListReader(ctrl)
	items := NewMockItemReader(ctrl)
	explore := NewMockExploreWriter(ctrl)

	project := &models.ProjectDB{ProjectID: 1, UserID: userID, ProjectName: "Trip"}
	projects.EXPECT().GetByID(ctx, userID, int64(1)).Return(project, nil)
	lists.EXPECT().ListByProject(ctx, userID, int64(1)).Return(nil, nil)
	items.EXPECT().ListByProject(ctx, userID, int64(1)).Return(nil, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "john"}, nil)
	explore.EXPECT().SaveProject(ctx, userID, "john", "Trip", nil).Return(int64(77), nil)

	// No broker configured, the snapshot still publishes
	svc := NewPublishService(users, projects, lists, items, explore, nil)
	exploreProjectID, err := svc.Publish(ctx, userID, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(77), exploreProjectID)
}

func TestPublishService_Publish_KafkaErrorIgnored(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserReader(ctrl)
	projects := NewMockProjectReader(ctrl)
	lists := NewMockListReader(ctrl)
	items := NewMockItemReader(ctrl)
	explore := NewMockExploreWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	project := &models.ProjectDB{ProjectID: 1, UserID: userID, ProjectName: "Trip"}
	projects.EXPECT().GetByID(ctx, userID, int64(1)).Return(project, nil)
	lists.EXPECT().ListByProject(ctx, userID, int64(1)).Return(nil, nil)
	items.EXPECT().ListByProject(ctx, userID, int64(1)).Return(nil, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "john"}, nil)
	explore.EXPECT().SaveProject(ctx, userID, "john", "Trip", nil).Return(int64(77), nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	// The event stream is best effort, a broker failure does not fail the share
	svc := NewPublishService(users, projects, lists, items, explore, kafkaWriter)
	exploreProjectID, err := svc.Publish(ctx, userID, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(77), exploreProjectID)
}

func TestPublishService_Publish_SaveErrors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserReader(ctrl)
	projects := NewMockProjectReader(ctrl)
	lists := NewMockListReader(ctrl)
	items := NewMockItemReader(ctrl)
	explore := NewMockExploreWriter(ctrl)
	svc := NewPublishService(users, projects, lists, items, explore, nil)

	project := &models.ProjectDB{ProjectID: 1, UserID: userID, ProjectName: "Trip"}
	camping := models.ListDB{ListID: 10, UserID: userID, ProjectID: 1, ListName: "Camping"}

	// Project copy fails
	projects.EXPECT().GetByID(ctx, userID, int64(1)).Return(project, nil)
	lists.EXPECT().ListByProject(ctx, userID, int64(1)).Return(nil, nil)
	items.EXPECT().ListByProject(ctx, userID, int64(1)).Return(nil, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "john"}, nil)
	explore.EXPECT().SaveProject(ctx, userID, "john", "Trip", nil).Return(int64(0), errors.New("insert failed"))
	_, err := svc.Publish(ctx, userID, 1)
	assert.EqualError(t, err, "insert failed")

	// List copy fails after the project row landed; the caller's transaction
	// rolls the partial snapshot back
	projects.EXPECT().GetByID(ctx, userID, int64(1)).Return(project, nil)
	lists.EXPECT().ListByProject(ctx, userID, int64(1)).Return([]models.ListDB{camping}, nil)
	items.EXPECT().ListByProject(ctx, userID, int64(1)).Return(nil, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "john"}, nil)
	explore.EXPECT().SaveProject(ctx, userID, "john", "Trip", nil).Return(int64(77), nil)
	explore.EXPECT().SaveList(ctx, userID, int64(77), camping, "Trip").Return(errors.New("list copy failed"))
	_, err = svc.Publish(ctx, userID, 1)
	assert.EqualError(t, err, "list copy failed")
}
