package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jeopardy-server/internal/model"
)

type fakeContentSource struct {
	works map[string]*model.TopicWorks
	hits  map[string]int
}

func (f *fakeContentSource) TopicWorks(_ context.Context, topic string) (*model.TopicWorks, error) {
	f.hits[topic]++
	w, ok := f.works[topic]
	if !ok {
		return nil, model.ErrContentUnavailable
	}
	return w, nil
}

type fakePoolCache struct {
	pools map[string]*model.TopicWorks
}

func (f *fakePoolCache) Get(_ context.Context, topic string) (*model.TopicWorks, error) {
	return f.pools[topic], nil
}

func (f *fakePoolCache) Set(_ context.Context, topic string, works *model.TopicWorks) error {
	f.pools[topic] = works
	return nil
}

func (f *fakePoolCache) Delete(_ context.Context, topic string) error {
	delete(f.pools, topic)
	return nil
}

func hitchcockWorks() *model.TopicWorks {
	return &model.TopicWorks{
		Name: model.LocalizedText{model.LocaleEN: "Alfred Hitchcock", model.LocaleDE: "Alfred Hitchcock"},
		Related: model.NameList{
			English: []string{"Psycho", "Vertigo", "Rope", "The Birds"},
			German:  []string{"Psycho", "Vertigo", "Cocktail für eine Leiche", "Die Vögel"},
		},
		Unrelated: model.NameList{
			English: []string{"Alien", "Seven", "Heat", "Jaws"},
			German:  []string{"Alien", "Sieben", "Heat", "Der weiße Hai"},
		},
	}
}

func newCatalogFixture(works map[string]*model.TopicWorks) (*CatalogService, *fakeContentSource, *fakePoolCache, *fakeCategoryRepo) {
	source := &fakeContentSource{works: works, hits: map[string]int{}}
	pools := &fakePoolCache{pools: map[string]*model.TopicWorks{}}
	repo := &fakeCategoryRepo{}
	svc := NewCatalogService(source, pools, NewGeneratorService(rand.New(rand.NewSource(11))), repo, zerolog.Nop())
	return svc, source, pools, repo
}

func TestBuildCategoryPersists(t *testing.T) {
	svc, _, _, repo := newCatalogFixture(map[string]*model.TopicWorks{
		"Alfred_Hitchcock": hitchcockWorks(),
	})

	name := model.LocalizedText{model.LocaleEN: "Movies", model.LocaleDE: "Filme"}
	category, err := svc.BuildCategory(context.Background(), name,
		[]TopicSpec{{Topic: "Alfred_Hitchcock", Value: 50}})
	require.NoError(t, err)

	require.Len(t, category.Questions, 1)
	q := category.Questions[0]
	assert.Equal(t, 50, q.Value)
	assert.Equal(t, "Which of these films were directed by Alfred Hitchcock?", q.Text[model.LocaleEN])
	assert.Equal(t, "Welche dieser Filme wurden von Alfred Hitchcock gedreht?", q.Text[model.LocaleDE])
	assert.True(t, q.Answers[0].Correct)

	require.Len(t, repo.categories, 1, "category persisted")
	assert.Equal(t, category.ID, repo.categories[0].ID)
}

func TestBuildCategorySkipsUnavailableTopics(t *testing.T) {
	svc, _, _, _ := newCatalogFixture(map[string]*model.TopicWorks{
		"Alfred_Hitchcock": hitchcockWorks(),
	})

	category, err := svc.BuildCategory(context.Background(),
		model.LocalizedText{model.LocaleEN: "Movies"},
		[]TopicSpec{
			{Topic: "Unknown_Person", Value: 50},
			{Topic: "Alfred_Hitchcock", Value: 40},
		})
	require.NoError(t, err)
	require.Len(t, category.Questions, 1)
	assert.Equal(t, 40, category.Questions[0].Value)
}

func TestBuildCategoryAllTopicsUnavailable(t *testing.T) {
	svc, _, _, repo := newCatalogFixture(map[string]*model.TopicWorks{})

	_, err := svc.BuildCategory(context.Background(),
		model.LocalizedText{model.LocaleEN: "Movies"},
		[]TopicSpec{{Topic: "Unknown_Person", Value: 50}})
	require.ErrorIs(t, err, model.ErrContentUnavailable)
	assert.Empty(t, repo.categories, "empty category is not persisted")
}

func TestBuildCategoryUsesPoolCache(t *testing.T) {
	svc, source, pools, _ := newCatalogFixture(map[string]*model.TopicWorks{
		"Alfred_Hitchcock": hitchcockWorks(),
	})

	name := model.LocalizedText{model.LocaleEN: "Movies"}
	topics := []TopicSpec{{Topic: "Alfred_Hitchcock", Value: 50}}

	_, err := svc.BuildCategory(context.Background(), name, topics)
	require.NoError(t, err)
	assert.Equal(t, 1, source.hits["Alfred_Hitchcock"])
	assert.NotNil(t, pools.pools["Alfred_Hitchcock"], "pool written back to the cache")

	_, err = svc.BuildCategory(context.Background(), name, topics)
	require.NoError(t, err)
	assert.Equal(t, 1, source.hits["Alfred_Hitchcock"], "second build served from the cache")
}
