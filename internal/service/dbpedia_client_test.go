package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jeopardy-server/internal/model"
)

func sparqlRows(rows ...[2]string) string {
	bindings := make([]string, len(rows))
	for i, r := range rows {
		bindings[i] = fmt.Sprintf(`{"en":{"value":%q},"de":{"value":%q}}`, r[0], r[1])
	}
	return fmt.Sprintf(`{"results":{"bindings":[%s]}}`, strings.Join(bindings, ","))
}

func TestTopicWorks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		require.NotEmpty(t, query)
		assert.Equal(t, "application/sparql-results+json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/sparql-results+json")
		switch {
		case strings.Contains(query, "rdfs:label ?en . FILTER(lang(?en) = \"en\")") &&
			strings.Contains(query, "LIMIT 1"):
			fmt.Fprint(w, sparqlRows([2]string{"Alfred Hitchcock", "Alfred Hitchcock"}))
		case strings.Contains(query, "FILTER NOT EXISTS"):
			fmt.Fprint(w, sparqlRows([2]string{"Alien", "Alien"}, [2]string{"Jaws", "Der weiße Hai"}))
		default:
			fmt.Fprint(w, sparqlRows([2]string{"Psycho", "Psycho"}, [2]string{"The Birds", "Die Vögel"}))
		}
	}))
	defer srv.Close()

	client := NewDBPediaClient(srv.URL, 30)
	works, err := client.TopicWorks(context.Background(), "Alfred_Hitchcock")
	require.NoError(t, err)

	assert.Equal(t, "Alfred Hitchcock", works.Name[model.LocaleEN])
	assert.Equal(t, []string{"Psycho", "The Birds"}, works.Related.English)
	assert.Equal(t, []string{"Psycho", "Die Vögel"}, works.Related.German)
	assert.Equal(t, []string{"Alien", "Jaws"}, works.Unrelated.English)
}

func TestTopicWorksNoRelatedFilms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sparqlRows())
	}))
	defer srv.Close()

	client := NewDBPediaClient(srv.URL, 30)
	_, err := client.TopicWorks(context.Background(), "Nobody")
	require.ErrorIs(t, err, model.ErrContentUnavailable)
}

func TestTopicWorksEndpointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewDBPediaClient(srv.URL, 30)
	_, err := client.TopicWorks(context.Background(), "Alfred_Hitchcock")
	require.ErrorIs(t, err, model.ErrContentUnavailable)
}

func TestResourceNameFallsBackToIdentifier(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			// Name lookup finds nothing.
			fmt.Fprint(w, sparqlRows())
			return
		}
		fmt.Fprint(w, sparqlRows([2]string{"Psycho", "Psycho"}))
	}))
	defer srv.Close()

	client := NewDBPediaClient(srv.URL, 30)
	works, err := client.TopicWorks(context.Background(), "Alfred_Hitchcock")
	require.NoError(t, err)
	assert.Equal(t, "Alfred Hitchcock", works.Name[model.LocaleEN])
	assert.Equal(t, "Alfred Hitchcock", works.Name[model.LocaleDE])
}
