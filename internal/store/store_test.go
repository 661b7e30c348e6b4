package store_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-gridfield/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	item, err := s.CreateItem(ctx, "pricing", "  Spring prices ")
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Spring prices", item.Title)

	got, err := s.Item(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "pricing", got.Template)
	assert.True(t, item.CreatedAt.Equal(got.CreatedAt))

	untitled, err := s.CreateItem(ctx, "schedule", "")
	require.NoError(t, err)
	assert.Equal(t, "schedule", untitled.Title)

	items, err := s.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, untitled.ID, items[1].ID)
}

func TestStore_CreateRequiresTemplate(t *testing.T) {
	_, err := openStore(t).CreateItem(context.Background(), " ", "x")
	require.Error(t, err)
}

func TestStore_ItemNotFound(t *testing.T) {
	_, err := openStore(t).Item(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_SaveFieldsReplacesValues(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	item, err := s.CreateItem(ctx, "pricing", "")
	require.NoError(t, err)

	first := json.RawMessage(`{"titles":["A"],"data":[["1"],["2"]]}`)
	require.NoError(t, s.SaveFields(ctx, item.ID, []store.FieldValue{
		{FieldID: "prices", Raw: first},
		{FieldID: "compare", Raw: json.RawMessage(`{"titles":[],"data":[]}`)},
	}))

	shorter := json.RawMessage(`{"titles":["A"],"data":[["1"]]}`)
	require.NoError(t, s.SaveFields(ctx, item.ID, []store.FieldValue{
		{FieldID: "prices", Raw: shorter},
	}))

	fields, err := s.Fields(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.JSONEq(t, string(shorter), string(fields["prices"].Raw))
	assert.Equal(t, "", fields["prices"].SearchText)
	assert.JSONEq(t, `{"titles":[],"data":[]}`, string(fields["compare"].Raw))
}

func TestStore_SaveFieldsErrors(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	err := s.SaveFields(ctx, "missing", []store.FieldValue{{FieldID: "x", Raw: json.RawMessage(`{}`)}})
	assert.ErrorIs(t, err, store.ErrNotFound)

	item, err := s.CreateItem(ctx, "pricing", "")
	require.NoError(t, err)
	err = s.SaveFields(ctx, item.ID, []store.FieldValue{
		{FieldID: "ok", Raw: json.RawMessage(`{}`)},
		{FieldID: "bad", Raw: json.RawMessage(`{`)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "bad"`)

	fields, err := s.Fields(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, fields, "failed save must not persist any field")
}

func TestStore_DeleteItem(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	item, err := s.CreateItem(ctx, "pricing", "")
	require.NoError(t, err)
	require.NoError(t, s.SaveFields(ctx, item.ID, []store.FieldValue{{FieldID: "prices", Raw: json.RawMessage(`{}`)}}))

	require.NoError(t, s.DeleteItem(ctx, item.ID))
	assert.ErrorIs(t, s.DeleteItem(ctx, item.ID), store.ErrNotFound)

	fields, err := s.Fields(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestStore_PersistsToFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "content.db")

	s, err := store.Open(ctx, path)
	require.NoError(t, err)
	item, err := s.CreateItem(ctx, "pricing", "")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Item(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
}
