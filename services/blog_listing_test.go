package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogging-api/api/dto"
	"blogging-api/models"
)

func seedBlogs(t *testing.T, store *fakeBlogStore, blogs ...models.Blog) {
	t.Helper()
	for i := range blogs {
		require.NoError(t, store.Insert(context.Background(), &blogs[i]))
	}
}

func blogAt(id string, createdAt time.Time) models.Blog {
	return models.Blog{
		ID:          id,
		Category:    "Technology",
		Topic:       "general",
		Title:       "post " + id,
		ReadTime:    "5 min",
		Content:     "content of " + id,
		Author:      "Alice",
		AuthorEmail: "alice@example.com",
		CreatedAt:   createdAt,
	}
}

func TestListPagesPartitionTheSortedSet(t *testing.T) {
	store := newFakeBlogStore()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedBlogs(t, store, blogAt(fmt.Sprintf("blog-%02d", i), base.Add(time.Duration(i)*time.Minute)))
	}
	svc := NewBlogService(store, newFakeUserStore(), &fakeMediaStore{})

	var all []dto.BlogDTO
	for page := 1; page <= 3; page++ {
		result, err := svc.List(context.Background(), nil, page)
		require.NoError(t, err)
		assert.Equal(t, page, result.Page)
		assert.Equal(t, PageSize, result.PageSize)
		assert.Equal(t, int64(25), result.Total)
		all = append(all, result.Data...)
	}

	require.Len(t, all, 25)
	// Newest first, no duplicates, no gaps.
	seen := map[string]bool{}
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].CreatedAt >= all[i].CreatedAt)
	}
	for _, b := range all {
		assert.False(t, seen[b.ID], "blog %s appeared twice", b.ID)
		seen[b.ID] = true
	}

	// Past-the-end pages are empty, never an error.
	result, err := svc.List(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, int64(25), result.Total)
}

func TestListOrderIsDeterministicForEqualTimestamps(t *testing.T) {
	store := newFakeBlogStore()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedBlogs(t, store,
		blogAt("c", at),
		blogAt("a", at),
		blogAt("b", at),
	)
	svc := NewBlogService(store, newFakeUserStore(), &fakeMediaStore{})

	first, err := svc.List(context.Background(), nil, 1)
	require.NoError(t, err)
	ids := []string{first.Data[0].ID, first.Data[1].ID, first.Data[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	// Re-running the same query yields the same order.
	for i := 0; i < 5; i++ {
		again, err := svc.List(context.Background(), nil, 1)
		require.NoError(t, err)
		assert.Equal(t, first.Data, again.Data)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	store := newFakeBlogStore()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tech := blogAt("t1", base)
	health := blogAt("h1", base.Add(time.Minute))
	health.Category = "Health"
	sports := blogAt("s1", base.Add(2*time.Minute))
	sports.Category = "Sports"
	seedBlogs(t, store, tech, health, sports)
	svc := NewBlogService(store, newFakeUserStore(), &fakeMediaStore{})

	result, err := svc.List(context.Background(), []string{"Health", "Sports"}, 1)
	require.NoError(t, err)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "s1", result.Data[0].ID)
	assert.Equal(t, "h1", result.Data[1].ID)
	assert.Equal(t, int64(2), result.Total)
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	store := newFakeBlogStore()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	byCategory := blogAt("cat", base)
	byCategory.Category = "Technology"
	byCategory.Title = "untitled"
	byCategory.Topic = "misc"
	byCategory.Content = "nothing here"

	byTitle := blogAt("title", base.Add(time.Minute))
	byTitle.Category = "Health"
	byTitle.Title = "The TECHNICAL debt trap"
	byTitle.Topic = "misc"
	byTitle.Content = "nothing here"

	byContent := blogAt("content", base.Add(2*time.Minute))
	byContent.Category = "Health"
	byContent.Title = "untitled"
	byContent.Topic = "misc"
	byContent.Content = "a fintech story"

	unrelated := blogAt("other", base.Add(3*time.Minute))
	unrelated.Category = "Health"
	unrelated.Title = "gardening"
	unrelated.Topic = "plants"
	unrelated.Content = "flowers"

	seedBlogs(t, store, byCategory, byTitle, byContent, unrelated)
	svc := NewBlogService(store, newFakeUserStore(), &fakeMediaStore{})

	result, err := svc.Search(context.Background(), "tech", 1)
	require.NoError(t, err)
	require.Len(t, result.Data, 3)
	for _, b := range result.Data {
		assert.NotEqual(t, "other", b.ID)
	}
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	store := newFakeBlogStore()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedBlogs(t, store, blogAt("a", base), blogAt("b", base.Add(time.Minute)))
	svc := NewBlogService(store, newFakeUserStore(), &fakeMediaStore{})

	result, err := svc.Search(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)
}

func TestListBySelectedCategories(t *testing.T) {
	store := newFakeBlogStore()
	users := newFakeUserStore()
	users.put(models.User{
		Email:              "alice@example.com",
		Name:               "Alice",
		SelectedCategories: []string{"Health", "Sports"},
	})

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tech := blogAt("t1", base)
	health := blogAt("h1", base.Add(time.Minute))
	health.Category = "Health"
	sports := blogAt("s1", base.Add(2*time.Minute))
	sports.Category = "Sports"
	seedBlogs(t, store, tech, health, sports)
	svc := NewBlogService(store, users, &fakeMediaStore{})

	result, err := svc.ListBySelectedCategories(context.Background(), "alice@example.com", nil, 1)
	require.NoError(t, err)
	require.Len(t, result.Data, 2)

	// Explicit filter intersects with the selected set.
	result, err = svc.ListBySelectedCategories(context.Background(), "alice@example.com", []string{"Sports", "Technology"}, 1)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "s1", result.Data[0].ID)

	// Unknown caller fails with not found.
	_, err = svc.ListBySelectedCategories(context.Background(), "ghost@example.com", nil, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListMineMatchesOwnerEmailOnly(t *testing.T) {
	store := newFakeBlogStore()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mine := blogAt("mine", base)
	other := blogAt("other", base.Add(time.Minute))
	other.AuthorEmail = "bob@example.com"
	// Same display name, different owner: must not leak into my-blogs.
	other.Author = "Alice"
	seedBlogs(t, store, mine, other)
	svc := NewBlogService(store, newFakeUserStore(), &fakeMediaStore{})

	result, err := svc.ListMine(context.Background(), "alice@example.com", 1)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "mine", result.Data[0].ID)
}
