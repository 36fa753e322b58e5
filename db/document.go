package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	opCreateDocument = "create-document"
	opGetDocument    = "get-document"
	opListDocuments  = "list-documents"
)

// Document is a stored piece of raw bracket markup.
type Document struct {
	ID        uuid.UUID   `json:"id"`
	Title     pgtype.Text `json:"title"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"created_at"`
}

type CreateDocumentParams struct {
	Title pgtype.Text
	Body  string
}

type ListDocumentsParams struct {
	Limit  int32
	Offset int32
}

const createDocument = `
INSERT INTO documents (id, title, body)
VALUES ($1, $2, $3)
RETURNING id, title, body, created_at
`

const getDocument = `
SELECT id, title, body, created_at FROM documents
WHERE id = $1
`

const listDocuments = `
SELECT id, title, body, created_at FROM documents
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2
`

func scanDocument(row pgx.Row) (Document, error) {
	var (
		doc Document
		id  pgtype.UUID
	)

	err := row.Scan(&id, &doc.Title, &doc.Body, &doc.CreatedAt)
	if err != nil {
		return Document{}, err
	}

	if !id.Valid {
		return Document{}, ErrDataCorrupted
	}

	doc.ID = uuid.UUID(id.Bytes)
	return doc, nil
}

// CreateDocument stores the document body as is, the markup is neither parsed nor trimmed.
// Returns KindInvalid if the body or the title is too long, or KindInternal on database errors.
func (s *SQLStore) CreateDocument(ctx context.Context, arg CreateDocumentParams) (Document, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Document{}, newOpError(opCreateDocument, KindInternal, entDocument, "", err)
	}

	row := s.connPool.QueryRow(ctx, createDocument, pgtype.UUID{Bytes: id, Valid: true}, arg.Title, arg.Body)

	doc, err := scanDocument(row)
	if err != nil {
		return Document{}, sqlError(opCreateDocument, entDocument, id.String(), err)
	}

	return doc, nil
}

// GetDocument returns KindNotFound if there is no document with the id.
func (s *SQLStore) GetDocument(ctx context.Context, id uuid.UUID) (Document, error) {
	row := s.connPool.QueryRow(ctx, getDocument, pgtype.UUID{Bytes: id, Valid: true})

	doc, err := scanDocument(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Document{}, notFoundError(opGetDocument, entDocument, id.String())
	}

	if err != nil {
		return Document{}, sqlError(opGetDocument, entDocument, id.String(), err)
	}

	return doc, nil
}

// ListDocuments returns the newest documents first.
func (s *SQLStore) ListDocuments(ctx context.Context, arg ListDocumentsParams) ([]Document, error) {
	rows, err := s.connPool.Query(ctx, listDocuments, arg.Limit, arg.Offset)
	if err != nil {
		return nil, sqlError(opListDocuments, entDocument, "", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, sqlError(opListDocuments, entDocument, "", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, sqlError(opListDocuments, entDocument, "", fmt.Errorf("failed to iterate documents: %w", err))
	}

	return docs, nil
}
