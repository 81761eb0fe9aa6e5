package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

// RecordWriter is the write half of the blob store.
type RecordWriter interface {
	Set(ctx context.Context, key, value string) error
}

// RecordDeleter is implemented by stores that can drop a key outright.
type RecordDeleter interface {
	Delete(ctx context.Context, key string) error
}

// MainSeeder writes default records into the configured store.
type MainSeeder struct {
	store RecordWriter
}

func NewMainSeeder(store RecordWriter) *MainSeeder {
	return &MainSeeder{store: store}
}

// SeedAll resets both the progress record and the review queue.
func (s *MainSeeder) SeedAll(ctx context.Context) error {
	log.Println("Resetting learner state...")

	if err := s.SeedProgressOnly(ctx); err != nil {
		log.Printf("Progress reset failed: %v", err)
		return err
	}
	if err := s.SeedMissedOnly(ctx); err != nil {
		log.Printf("Review queue reset failed: %v", err)
		return err
	}

	log.Println("Learner state reset completed successfully!")
	return nil
}

// SeedProgressOnly writes the default progress record.
func (s *MainSeeder) SeedProgressOnly(ctx context.Context) error {
	return s.write(ctx, shared.ProgressStoreKey, model.NewUserProgress(shared.Categories))
}

// SeedMissedOnly empties the review queue.
func (s *MainSeeder) SeedMissedOnly(ctx context.Context) error {
	return s.write(ctx, shared.MissedStoreKey, []model.MissedQuestion{})
}

// Purge removes both records. The engines recreate defaults on next use.
func (s *MainSeeder) Purge(ctx context.Context) error {
	deleter, ok := s.store.(RecordDeleter)
	if !ok {
		return fmt.Errorf("store does not support deleting records")
	}
	for _, key := range []string{shared.ProgressStoreKey, shared.MissedStoreKey} {
		if err := deleter.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		log.Printf("Deleted record: %s", key)
	}
	return nil
}

func (s *MainSeeder) write(ctx context.Context, key string, record interface{}) error {
	data, err := shared.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	log.Printf("Reset record: %s", key)
	return nil
}
