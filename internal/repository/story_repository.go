package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storytrip-server/internal/domain"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// DBTX is the subset of pgxpool.Pool / pgx.Tx the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StoryRepository persists generated stories.
type StoryRepository interface {
	Create(ctx context.Context, payload *domain.StoryPayload) (int64, error)
	List(ctx context.Context) ([]*domain.Story, error)
	GetByID(ctx context.Context, id int64) (*domain.Story, error)
}

const (
	insertStoryQuery = `
        INSERT INTO stories (title, genre, story, script, timeline, music, caption)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`
	listStoriesQuery = `
        SELECT id, title, genre, story, script, timeline, music, caption, created_at
        FROM stories
        ORDER BY created_at DESC, id DESC`
	getStoryByIDQuery = `
        SELECT id, title, genre, story, script, timeline, music, caption, created_at
        FROM stories
        WHERE id = $1`
)

// storyRow mirrors the stories table; script and timeline are stored as JSON text.
type storyRow struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Genre     string    `db:"genre"`
	Story     string    `db:"story"`
	Script    string    `db:"script"`
	Timeline  string    `db:"timeline"`
	Music     string    `db:"music"`
	Caption   string    `db:"caption"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *storyRow) toDomain() (*domain.Story, error) {
	story := &domain.Story{
		ID: r.ID,
		StoryPayload: domain.StoryPayload{
			Title:   r.Title,
			Genre:   r.Genre,
			Story:   r.Story,
			Music:   r.Music,
			Caption: r.Caption,
		},
		CreatedAt: r.CreatedAt,
	}
	if err := json.Unmarshal([]byte(r.Script), &story.Script); err != nil {
		return nil, fmt.Errorf("%w: story %d script: %v", domain.ErrCorruptStory, r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.Timeline), &story.Timeline); err != nil {
		return nil, fmt.Errorf("%w: story %d timeline: %v", domain.ErrCorruptStory, r.ID, err)
	}
	if story.Script == nil {
		story.Script = []domain.ScriptLine{}
	}
	if story.Timeline == nil {
		story.Timeline = []domain.TimelineItem{}
	}
	return story, nil
}

type pgStoryRepository struct {
	db     DBTX
	logger *zap.Logger
}

var _ StoryRepository = (*pgStoryRepository)(nil)

func NewPgStoryRepository(db DBTX, logger *zap.Logger) StoryRepository {
	return &pgStoryRepository{
		db:     db,
		logger: logger.Named("StoryRepo"),
	}
}

// Create inserts the payload and returns the assigned id.
func (r *pgStoryRepository) Create(ctx context.Context, payload *domain.StoryPayload) (int64, error) {
	script, err := marshalList(payload.Script)
	if err != nil {
		return 0, fmt.Errorf("failed to encode script: %w", err)
	}
	timeline, err := marshalList(payload.Timeline)
	if err != nil {
		return 0, fmt.Errorf("failed to encode timeline: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, insertStoryQuery,
		payload.Title, payload.Genre, payload.Story, script, timeline, payload.Music, payload.Caption,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert story", zap.String("title", payload.Title), zap.Error(err))
		return 0, fmt.Errorf("failed to insert story: %w", err)
	}

	r.logger.Info("Story saved", zap.Int64("story_id", id))
	return id, nil
}

// List returns every story, newest first.
func (r *pgStoryRepository) List(ctx context.Context) ([]*domain.Story, error) {
	var rows []*storyRow
	if err := pgxscan.Select(ctx, r.db, &rows, listStoriesQuery); err != nil {
		r.logger.Error("Failed to list stories", zap.Error(err))
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	stories := make([]*domain.Story, 0, len(rows))
	for _, row := range rows {
		story, err := row.toDomain()
		if err != nil {
			r.logger.Error("Stored story cannot be decoded", zap.Int64("story_id", row.ID), zap.Error(err))
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, nil
}

// GetByID returns domain.ErrNotFound when no row has the id.
func (r *pgStoryRepository) GetByID(ctx context.Context, id int64) (*domain.Story, error) {
	log := r.logger.With(zap.Int64("story_id", id))

	var row storyRow
	if err := pgxscan.Get(ctx, r.db, &row, getStoryByIDQuery, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug("Story not found")
			return nil, domain.ErrNotFound
		}
		log.Error("Failed to get story", zap.Error(err))
		return nil, fmt.Errorf("failed to get story %d: %w", id, err)
	}

	story, err := row.toDomain()
	if err != nil {
		log.Error("Stored story cannot be decoded", zap.Error(err))
		return nil, err
	}
	return story, nil
}

// marshalList encodes a slice as JSON, writing [] for nil.
func marshalList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
