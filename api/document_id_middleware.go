package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const documentIDKey = "provided_document_id"

func (s *Service) documentIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// getting mandatory document id form the request, abort with 400 on error
		documentIDRaw := ctx.Param("document_id")

		documentID, err := uuid.Parse(documentIDRaw)
		if err != nil {
			errField := ErrorField{"document_id", fmt.Sprintf("Invalid document id: %s", documentIDRaw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidDocumentID, errField),
			)
			return
		}

		ctx.Set(documentIDKey, documentID)
		ctx.Next()
	}
}

func extractDocumentIDFromCtx(ctx *gin.Context) uuid.UUID {
	return ctx.MustGet(documentIDKey).(uuid.UUID)
}
