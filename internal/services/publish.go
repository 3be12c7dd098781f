package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// ExploreWriter defines write operations against the explore mirror tables.
type ExploreWriter interface {
	SaveProject(ctx context.Context, userID uuid.UUID, username, projectName string, description *string) (int64, error)
	SaveList(ctx context.Context, userID uuid.UUID, projectID int64, list models.ListDB, projectName string) error
	SaveItem(ctx context.Context, userID uuid.UUID, projectID int64, item models.ItemDB) error
	UpdateName(ctx context.Context, userID uuid.UUID, projectID int64, name string) (int64, error)
	UpdateDescription(ctx context.Context, userID uuid.UUID, projectID int64, description string) (int64, error)
	DeleteProject(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error)
	DeleteLists(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error)
	DeleteItems(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PublishService copies a private project into the explore gallery. A
// publish is a snapshot: it never mutates the source project, and publishing
// the same project again produces an independent explore entry.
type PublishService struct {
	users       UserReader
	projects    ProjectReader
	lists       ListReader
	items       ItemReader
	explore     ExploreWriter
	kafkaWriter KafkaWriter
}

// NewPublishService creates a new PublishService. The Kafka writer may be
// nil, in which case share events are skipped.
func NewPublishService(
	users UserReader,
	projects ProjectReader,
	lists ListReader,
	items ItemReader,
	explore ExploreWriter,
	kafkaWriter KafkaWriter,
) *PublishService {
	return &PublishService{
		users:       users,
		projects:    projects,
		lists:       lists,
		items:       items,
		explore:     explore,
		kafkaWriter: kafkaWriter,
	}
}

// Publish mirrors the caller's project into the explore tables under a newly
// minted explore project id and returns that id. Lists and items are copied
// denormalized with username and project name. Runs under a request
// transaction so a partial publish rolls back.
func (s *PublishService) Publish(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error) {
	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to get project", "project_id", projectID, "error", err)
		return 0, err
	}
	if project == nil {
		return 0, ErrProjectNotFound
	}

	lists, err := s.lists.ListByProject(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to list lists", "project_id", projectID, "error", err)
		return 0, err
	}

	items, err := s.items.ListByProject(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to list items", "project_id", projectID, "error", err)
		return 0, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return 0, err
	}
	if user == nil {
		return 0, ErrProjectNotFound
	}

	exploreProjectID, err := s.explore.SaveProject(ctx, userID, user.Username, project.ProjectName, project.Description)
	if err != nil {
		logger.Log.Errorw("failed to publish project", "project_id", projectID, "error", err)
		return 0, err
	}

	for _, list := range lists {
		if err := s.explore.SaveList(ctx, userID, exploreProjectID, list, project.ProjectName); err != nil {
			logger.Log.Errorw("failed to publish list", "list_id", list.ListID, "error", err)
			return 0, err
		}

		for _, item := range items {
			if item.ListID != list.ListID {
				continue
			}
			if err := s.explore.SaveItem(ctx, userID, exploreProjectID, item); err != nil {
				logger.Log.Errorw("failed to publish item", "item_id", item.ItemID, "error", err)
				return 0, err
			}
		}
	}

	listIDs := make([]int64, len(lists))
	for i, l := range lists {
		listIDs[i] = l.ListID
	}
	entries := make([]WeightEntry, len(items))
	for i, it := range items {
		entries[i] = WeightEntry{ListID: it.ListID, Weight: it.Weight, Quantity: it.Quantity}
	}
	_, totalWeight := AggregateWeights(listIDs, entries)

	s.publishShareEvent(ctx, models.ShareEvent{
		EventID:          uuid.NewString(),
		Timestamp:        time.Now().Unix(),
		UserID:           userID.String(),
		Username:         user.Username,
		ProjectID:        projectID,
		ExploreProjectID: exploreProjectID,
		ProjectName:      project.ProjectName,
		TotalWeight:      totalWeight,
	})

	return exploreProjectID, nil
}

// publishShareEvent publishes a share event to Kafka. Failures are logged,
// not returned: the snapshot is already committed and the event stream is
// best effort.
func (s *PublishService) publishShareEvent(ctx context.Context, event models.ShareEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal share event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish share event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Share event published to Kafka", "event_id", event.EventID, "explore_project_id", event.ExploreProjectID)
	}
}
