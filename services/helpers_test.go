package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lac-hong-legacy/sdr_trainer/model"
	"github.com/lac-hong-legacy/sdr_trainer/seed/seeders"
)

type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) AddDays(days int) {
	c.now = c.now.AddDate(0, 0, days)
}

// failingStore rejects every write when failSet is on, or only writes to
// failKey when that is set.
type failingStore struct {
	*MemoryStore
	failSet bool
	failKey string
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet || (s.failKey != "" && key == s.failKey) {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func testBadgeCatalog() map[string]model.Badge {
	catalog := make(map[string]model.Badge)
	for _, b := range seeders.NewBadgeSeeder().GetBadges() {
		catalog[b.ID] = b
	}
	return catalog
}

func testContent(t *testing.T) *ContentService {
	t.Helper()
	content, err := NewContentService(
		seeders.NewQuestionSeeder().GetQuestions(),
		seeders.NewBadgeSeeder().GetBadges(),
	)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return content
}

func badgeIDs(badges []model.Badge) []string {
	ids := make([]string, len(badges))
	for i, b := range badges {
		ids[i] = b.ID
	}
	return ids
}
