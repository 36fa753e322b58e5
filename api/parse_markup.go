package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/bbparse/bbcode"
	"github.com/Drolfothesgnir/bbparse/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Input is a pointer, so the empty markup is accepted while a missing one is not.
type ParseMarkupRequest struct {
	Input *string `json:"input" binding:"required"`
}

type ParseMarkupResponse struct {
	Nodes    []bbcode.SerializableNode    `json:"nodes"`
	Stats    bbcode.Stats                 `json:"stats"`
	Warnings []bbcode.SerializableWarning `json:"warnings"`
	Cached   bool                         `json:"cached"`
}

func newParseMarkupResponse(result tmpstore.ParseResult, cached bool) ParseMarkupResponse {
	return ParseMarkupResponse{
		Nodes:    result.Nodes,
		Stats:    result.Stats,
		Warnings: result.Warnings,
		Cached:   cached,
	}
}

func (s *Service) parseMarkup(ctx *gin.Context) {
	var req ParseMarkupRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	if !s.checkInputSize(ctx, "input", *req.Input) {
		return
	}

	result, cached := s.parse(ctx, *req.Input)

	ctx.JSON(http.StatusOK, newParseMarkupResponse(result, cached))
}

// checkInputSize aborts with 413 if the markup exceeds the configured limit.
func (s *Service) checkInputSize(ctx *gin.Context, field string, input string) bool {
	limit := s.config.MaxInputBytes
	if limit <= 0 || len(input) <= limit {
		return true
	}

	errField := ErrorField{field, fmt.Sprintf("must not exceed %d bytes", limit)}
	ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrInputTooLarge, errField))
	return false
}

// parse returns the parse result of the input, from the cache if possible.
// Cache failures are logged and never fail the request.
func (s *Service) parse(ctx context.Context, input string) (tmpstore.ParseResult, bool) {
	if s.cache == nil {
		return newParseResult(input), false
	}

	key := tmpstore.InputKey(input)

	cached, err := s.cache.GetParseResult(ctx, key)
	if err == nil {
		return *cached, true
	}

	switch {
	case errors.Is(err, tmpstore.ErrCorruptedEntry):
		log.Warn().Err(err).Str("key", key).Msg("evicting corrupted parse result")
		if derr := s.cache.DeleteParseResult(ctx, key); derr != nil {
			log.Warn().Err(derr).Str("key", key).Msg("cannot evict parse result from cache")
		}
	case !errors.Is(err, tmpstore.ErrCacheMiss):
		log.Warn().Err(err).Str("key", key).Msg("cannot read parse result from cache")
	}

	result := newParseResult(input)

	err = s.cache.SaveParseResult(ctx, key, result, s.config.ParseCacheTTL)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cannot save parse result to cache")
	}

	return result, false
}

func newParseResult(input string) tmpstore.ParseResult {
	nodes := bbcode.Parse(input)

	return tmpstore.ParseResult{
		Nodes:    bbcode.Serialize(nodes),
		Stats:    bbcode.Summarize(nodes),
		Warnings: bbcode.SerializeWarnings(bbcode.Check(nodes)),
		ParsedAt: time.Now().UTC(),
	}
}
