package api

import (
	"net/http"

	db "github.com/Drolfothesgnir/bbparse/db"
	"github.com/Drolfothesgnir/bbparse/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CreateDocumentRequest struct {
	Title *string `json:"title" binding:"omitempty,max=200"`
	Body  *string `json:"body" binding:"required"`
}

type DocumentResponse struct {
	Document db.Document         `json:"document"`
	Parsed   ParseMarkupResponse `json:"parsed"`
}

type ListDocumentsQuery struct {
	Offset int32 `form:"offset" json:"offset" binding:"gte=0"`
	Limit  int32 `form:"limit" json:"limit" binding:"gte=1,lte=100"`
}

type ListDocumentsResponse struct {
	Documents []db.Document `json:"documents"`
}

func (s *Service) createDocument(ctx *gin.Context) {
	var req CreateDocumentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	if !s.checkInputSize(ctx, "body", *req.Body) {
		return
	}

	// the body is stored verbatim, only the title is trimmed
	doc, err := s.store.CreateDocument(ctx, db.CreateDocumentParams{
		Title: util.StringToPgxText(req.Title),
		Body:  *req.Body,
	})

	if db.IsKind(err, db.KindInvalid) {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams))
		return
	}

	if err != nil {
		log.Error().Err(err).Msg("cannot create document")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrInternal))
		return
	}

	result, cached := s.parse(ctx, doc.Body)

	ctx.JSON(http.StatusCreated, DocumentResponse{
		Document: doc,
		Parsed:   newParseMarkupResponse(result, cached),
	})
}

func (s *Service) getDocument(ctx *gin.Context) {
	documentID := extractDocumentIDFromCtx(ctx)

	doc, err := s.store.GetDocument(ctx, documentID)

	if db.IsKind(err, db.KindNotFound) {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrDocumentNotFound))
		return
	}

	if err != nil {
		log.Error().Err(err).Str("document_id", documentID.String()).Msg("cannot get document")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrInternal))
		return
	}

	result, cached := s.parse(ctx, doc.Body)

	ctx.JSON(http.StatusOK, DocumentResponse{
		Document: doc,
		Parsed:   newParseMarkupResponse(result, cached),
	})
}

func (s *Service) listDocuments(ctx *gin.Context) {
	// pre-filled with default values
	req := ListDocumentsQuery{
		Offset: 0,
		Limit:  20,
	}

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	docs, err := s.store.ListDocuments(ctx, db.ListDocumentsParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})

	if err != nil {
		log.Error().Err(err).Msg("cannot list documents")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrInternal))
		return
	}

	ctx.JSON(http.StatusOK, ListDocumentsResponse{docs})
}
