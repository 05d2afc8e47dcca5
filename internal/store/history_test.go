package store_test

import (
	"sync"
	"testing"

	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/phrazzld/wonderwords/internal/store"
	"github.com/phrazzld/wonderwords/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_PutAndGet(t *testing.T) {
	t.Parallel()

	h := store.NewHistory()
	record := testutils.MustHappyRecord(t)

	require.NoError(t, h.Put("happy", record))

	got, ok := h.Get("happy")
	require.True(t, ok)
	assert.Same(t, record, got)
	assert.Equal(t, 1, h.Len())
}

func TestHistory_NormalizesKeys(t *testing.T) {
	t.Parallel()

	h := store.NewHistory()
	record := testutils.MustHappyRecord(t)

	require.NoError(t, h.Put("  Happy ", record))

	for _, word := range []string{"happy", "HAPPY", " happy"} {
		_, ok := h.Get(word)
		assert.True(t, ok, "lookup %q", word)
	}
	entries := h.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "happy", entries[0].Word)
}

func TestHistory_OverwriteMovesToFront(t *testing.T) {
	t.Parallel()

	h := store.NewHistory()
	first := testutils.MustSimpleRecord(t, "first")
	second := testutils.MustSimpleRecord(t, "second")
	updated := testutils.MustSimpleRecord(t, "updated")

	require.NoError(t, h.Put("tree", first))
	require.NoError(t, h.Put("river", second))
	require.NoError(t, h.Put("Tree", updated))

	entries := h.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "tree", entries[0].Word)
	assert.Same(t, updated, entries[0].Record)
	assert.Equal(t, "river", entries[1].Word)
}

func TestHistory_PutRejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		word   string
		record *domain.WordRecord
	}{
		{name: "blank word", word: "   ", record: testutils.MustHappyRecord(t)},
		{name: "nil record", word: "happy", record: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := store.NewHistory()
			err := h.Put(tc.word, tc.record)
			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
			assert.Equal(t, 0, h.Len())
		})
	}
}

func TestHistory_Lookup(t *testing.T) {
	t.Parallel()

	h := store.NewHistory()
	_, err := h.Lookup("missing")
	assert.True(t, store.IsNotFoundError(err))

	require.NoError(t, h.Put("happy", testutils.MustHappyRecord(t)))
	record, err := h.Lookup("HAPPY")
	require.NoError(t, err)
	assert.Equal(t, "feeling good", record.Meaning())
}

func TestHistory_ConcurrentPuts(t *testing.T) {
	t.Parallel()

	h := store.NewHistory()
	record := testutils.MustHappyRecord(t)
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		for _, w := range words {
			wg.Add(1)
			go func(word string) {
				defer wg.Done()
				_ = h.Put(word, record)
				_ = h.All()
			}(w)
		}
	}
	wg.Wait()

	assert.Equal(t, len(words), h.Len())
	assert.Len(t, h.All(), len(words))
}
