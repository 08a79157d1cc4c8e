package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jeopardy-server/internal/cache"
	"jeopardy-server/internal/model"
	"jeopardy-server/internal/repository"
)

// TopicSpec names one content-source topic and the point value of the
// question built from it.
type TopicSpec struct {
	Topic string
	Value int
}

// CatalogService builds and persists the question catalog from the content
// source. Candidate pools are cached so repeated runs skip the endpoint.
type CatalogService struct {
	source     ContentSource
	pools      cache.PoolCache
	generator  *GeneratorService
	categories repository.CategoryRepo
	log        zerolog.Logger
}

// NewCatalogService creates a new catalog builder.
func NewCatalogService(
	source ContentSource,
	pools cache.PoolCache,
	generator *GeneratorService,
	categories repository.CategoryRepo,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		source:     source,
		pools:      pools,
		generator:  generator,
		categories: categories,
		log:        log,
	}
}

// BuildCategory assembles one category from topic specs and persists it.
// Topics whose content is unavailable are skipped; a category ending up with
// zero questions is not persisted and reported as ErrContentUnavailable so
// the caller can omit it.
func (s *CatalogService) BuildCategory(ctx context.Context, name model.LocalizedText, topics []TopicSpec) (*model.Category, error) {
	category := &model.Category{
		ID:   "c_" + uuid.New().String()[:8],
		Name: name,
	}

	for _, spec := range topics {
		question, err := s.buildQuestion(ctx, spec)
		if err != nil {
			if errors.Is(err, model.ErrContentUnavailable) {
				s.log.Warn().Err(err).Str("topic", spec.Topic).Msg("skipping topic")
				continue
			}
			return nil, err
		}
		category.Questions = append(category.Questions, *question)
	}

	if len(category.Questions) == 0 {
		return nil, fmt.Errorf("category %q has no usable questions: %w",
			name[model.LocaleEN], model.ErrContentUnavailable)
	}

	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to persist category: %w", err)
	}

	s.log.Info().Str("category", name[model.LocaleEN]).
		Int("questions", len(category.Questions)).Msg("category built")
	return category, nil
}

func (s *CatalogService) buildQuestion(ctx context.Context, spec TopicSpec) (*model.Question, error) {
	works, err := s.topicWorks(ctx, spec.Topic)
	if err != nil {
		return nil, err
	}

	answers, err := s.generator.Generate(works.Related, works.Unrelated)
	if err != nil {
		return nil, err
	}

	return &model.Question{
		ID: "q_" + uuid.New().String()[:8],
		Text: model.LocalizedText{
			model.LocaleEN: fmt.Sprintf("Which of these films were directed by %s?", works.Name[model.LocaleEN]),
			model.LocaleDE: fmt.Sprintf("Welche dieser Filme wurden von %s gedreht?", works.Name[model.LocaleDE]),
		},
		Value:   spec.Value,
		Answers: answers,
	}, nil
}

func (s *CatalogService) topicWorks(ctx context.Context, topic string) (*model.TopicWorks, error) {
	if s.pools != nil {
		cached, err := s.pools.Get(ctx, topic)
		if err != nil {
			s.log.Warn().Err(err).Str("topic", topic).Msg("pool cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	works, err := s.source.TopicWorks(ctx, topic)
	if err != nil {
		return nil, err
	}

	if s.pools != nil {
		if err := s.pools.Set(ctx, topic, works); err != nil {
			s.log.Warn().Err(err).Str("topic", topic).Msg("pool cache write failed")
		}
	}
	return works, nil
}
