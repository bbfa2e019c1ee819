package service

import (
	"context"
	"fmt"

	"github.com/TWRT/taskboard/internal/client"
)

const summaryPrompt = "Summarize this task in under 10 words: %s"

type SummaryService struct {
	summarizer client.Summarizer
}

func NewSummaryService(summarizer client.Summarizer) *SummaryService {
	return &SummaryService{summarizer: summarizer}
}

// Summarize returns the model output verbatim; length is not enforced.
func (s *SummaryService) Summarize(ctx context.Context, text string) (string, error) {
	summary, err := s.summarizer.Summarize(ctx, fmt.Sprintf(summaryPrompt, text))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return summary, nil
}
