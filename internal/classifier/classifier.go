// Package classifier turns free-text mood descriptions into a structured
// mood.Analysis. The primary path is an external language model; a
// keyword-based analyzer serves as a named fallback branch when the model
// is unreachable or returns garbage.
package classifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/DathaCode/moody-backend/internal/mood"
)

// Analyzer classifies the emotional content of a text input.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (mood.Analysis, error)
}

// Service runs the LLM classifier and falls back to keyword matching on
// failure. The fallback never errors, so Analyze only fails on an empty
// input.
type Service struct {
	llm      Analyzer
	fallback *KeywordAnalyzer
	log      *zap.Logger
}

// NewService creates a classification service. llm may be nil, in which
// case every request takes the keyword path.
func NewService(llm Analyzer, log *zap.Logger) *Service {
	return &Service{
		llm:      llm,
		fallback: NewKeywordAnalyzer(),
		log:      log,
	}
}

// Analyze classifies text, preferring the language model.
func (s *Service) Analyze(ctx context.Context, text string) (mood.Analysis, error) {
	if text == "" {
		return mood.Analysis{}, fmt.Errorf("empty mood text")
	}

	if s.llm != nil {
		analysis, err := s.llm.Analyze(ctx, text)
		if err == nil {
			return analysis, nil
		}
		s.log.Warn("language model classification failed, using keyword fallback", zap.Error(err))
	}

	return s.fallback.Analyze(ctx, text)
}
