package db

import (
	"context"
	"testing"
	"time"

	"github.com/Drolfothesgnir/bbparse/util"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func createRandomDocument(t *testing.T, store Store) Document {
	t.Helper()

	title := util.RandomString(12)
	arg := CreateDocumentParams{
		Title: util.StringToPgxText(&title),
		Body:  util.RandomMarkup(4),
	}

	doc, err := store.CreateDocument(context.Background(), arg)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, doc.ID)
	require.Equal(t, arg.Title, doc.Title)
	require.Equal(t, arg.Body, doc.Body)
	require.WithinDuration(t, time.Now(), doc.CreatedAt, time.Minute)

	return doc
}

func TestCreateDocument(t *testing.T) {
	store := requireStore(t)
	createRandomDocument(t, store)
}

func TestCreateDocument_NoTitle(t *testing.T) {
	store := requireStore(t)

	doc, err := store.CreateDocument(context.Background(), CreateDocumentParams{
		Body: "  [b]kept verbatim[/b]  ",
	})
	require.NoError(t, err)
	require.False(t, doc.Title.Valid)
	require.Equal(t, "  [b]kept verbatim[/b]  ", doc.Body)
}

func TestCreateDocument_TitleTooLong(t *testing.T) {
	store := requireStore(t)

	_, err := store.CreateDocument(context.Background(), CreateDocumentParams{
		Title: pgtype.Text{String: util.RandomString(201), Valid: true},
		Body:  "x",
	})
	require.Error(t, err)
	require.True(t, IsKind(err, KindInvalid), "got %v", err)
}

func TestGetDocument(t *testing.T) {
	store := requireStore(t)
	want := createRandomDocument(t, store)

	got, err := store.GetDocument(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Title, got.Title)
	require.Equal(t, want.Body, got.Body)
	require.WithinDuration(t, want.CreatedAt, got.CreatedAt, time.Second)
}

func TestGetDocument_NotFound(t *testing.T) {
	store := requireStore(t)

	_, err := store.GetDocument(context.Background(), uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEntityNotFound)
	require.True(t, IsKind(err, KindNotFound))
}

func TestListDocuments(t *testing.T) {
	store := requireStore(t)

	for range 3 {
		createRandomDocument(t, store)
	}

	docs, err := store.ListDocuments(context.Background(), ListDocumentsParams{Limit: 3})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	for i := 1; i < len(docs); i++ {
		require.False(t, docs[i].CreatedAt.After(docs[i-1].CreatedAt), "documents must be newest first")
	}
}
