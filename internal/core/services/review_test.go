package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/est22/snatch/internal/core/domain"
)

func newTestReview(entries *mockEntryStore, seed int64) *ReviewService {
	svc := NewReviewService(entries, rand.New(rand.NewSource(seed)))
	svc.clock = func() time.Time { return reviewTime }
	return svc
}

func seedEntries(t *testing.T, store *mockEntryStore, words ...string) {
	t.Helper()
	for _, w := range words {
		e := domain.NewEntry(domain.WordCandidate{Text: w, LangCode: "en"}, reviewTime.Add(-time.Hour))
		require.NoError(t, store.Save(context.Background(), e))
	}
}

func TestStartSessionNoCards(t *testing.T) {
	svc := newTestReview(newMockEntryStore(), 1)

	_, err := svc.StartSession(context.Background())

	require.ErrorIs(t, err, domain.ErrNoCards)
}

func TestStartSessionExcludesFutureEntries(t *testing.T) {
	store := newMockEntryStore()
	seedEntries(t, store, "due")

	future := reviewTime.Add(48 * time.Hour)
	notDue := domain.NewEntry(domain.WordCandidate{Text: "later", LangCode: "en"}, reviewTime)
	notDue.NextReviewAt = &future
	require.NoError(t, store.Save(context.Background(), notDue))

	svc := newTestReview(store, 1)
	session, err := svc.StartSession(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, session.Size())
	assert.Equal(t, "due", session.Queue[0].Word)
}

func TestStartSessionDeterministicShuffle(t *testing.T) {
	store := newMockEntryStore()
	seedEntries(t, store, "a", "b", "c", "d", "e", "f")

	first, err := newTestReview(store, 7).StartSession(context.Background())
	require.NoError(t, err)
	second, err := newTestReview(store, 7).StartSession(context.Background())
	require.NoError(t, err)

	require.Equal(t, first.Size(), second.Size())
	for i := range first.Queue {
		assert.Equal(t, first.Queue[i].ID, second.Queue[i].ID)
	}
}

func TestSubmitAnswerCorrect(t *testing.T) {
	store := newMockEntryStore()
	seedEntries(t, store, "word")
	svc := newTestReview(store, 1)

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.SubmitAnswer(context.Background(), session, true))

	assert.Equal(t, 1, session.CorrectCount)
	assert.Equal(t, 0, session.WrongCount)
	assert.True(t, session.Finished())

	stored, err := store.Get(context.Background(), session.Queue[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.BoxLevel)
	require.NotNil(t, stored.NextReviewAt)
	assert.Equal(t, reviewTime.Add(24*time.Hour).UTC(), *stored.NextReviewAt)
}

func TestSubmitAnswerWrongDoesNotRequeue(t *testing.T) {
	store := newMockEntryStore()
	seedEntries(t, store, "one", "two")
	svc := newTestReview(store, 1)

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	// Answer the first card wrong: the session advances past it rather
	// than looping it back into the current queue.
	require.NoError(t, svc.SubmitAnswer(context.Background(), session, false))
	assert.Equal(t, 1, session.Position)
	assert.Equal(t, 2, session.Size())

	require.NoError(t, svc.SubmitAnswer(context.Background(), session, true))
	assert.True(t, session.Finished())
	assert.Equal(t, 1, session.WrongCount)
	assert.Equal(t, 1, session.CorrectCount)

	// The wrong card is due again for the next session.
	next, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, next.Size())
	assert.Equal(t, 0, next.Queue[0].BoxLevel)
}

func TestSubmitAnswerAfterFinish(t *testing.T) {
	store := newMockEntryStore()
	seedEntries(t, store, "word")
	svc := newTestReview(store, 1)

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.SubmitAnswer(context.Background(), session, true))

	err = svc.SubmitAnswer(context.Background(), session, true)
	require.ErrorIs(t, err, domain.ErrSessionFinished)
}

func TestSubmitAnswerStoreFailureDoesNotAdvance(t *testing.T) {
	store := newMockEntryStore()
	seedEntries(t, store, "word")
	svc := newTestReview(store, 1)

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	store.saveErr = errors.New("disk full")
	err = svc.SubmitAnswer(context.Background(), session, true)

	require.Error(t, err)
	assert.Equal(t, 0, session.Position)
	assert.Equal(t, 0, session.CorrectCount)

	// Retry succeeds once the store recovers; no state was corrupted.
	store.saveErr = nil
	require.NoError(t, svc.SubmitAnswer(context.Background(), session, true))
	assert.True(t, session.Finished())

	stored, err := store.Get(context.Background(), session.Queue[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.BoxLevel)
}

func TestDueCount(t *testing.T) {
	store := newMockEntryStore()
	seedEntries(t, store, "a", "b", "c")
	svc := newTestReview(store, 1)

	count, err := svc.DueCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
