package assistant

import (
	"context"
	"log"
	"strings"
)

// Generator produces a reply from the hosted model.
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, message string) (string, error)
}

type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

type Reply struct {
	Message string `json:"message"`
	Source  Source `json:"source"`
}

// Service answers student questions. It never returns an error to the
// caller: any model failure degrades to the static knowledge base.
type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

func (s *Service) Respond(ctx context.Context, message string) Reply {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{Message: fallbackAnswer, Source: SourceFallback}
	}

	if s.gen != nil && s.gen.Configured() {
		answer, err := s.gen.Generate(ctx, message)
		if err == nil && strings.TrimSpace(answer) != "" {
			return Reply{Message: strings.TrimSpace(answer), Source: SourceModel}
		}
		if err != nil {
			log.Printf("assistant_model_error error=%q", err.Error())
		}
	}

	return Reply{Message: FallbackResponse(message), Source: SourceFallback}
}
