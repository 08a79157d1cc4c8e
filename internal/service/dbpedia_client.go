package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jeopardy-server/internal/model"
)

// ContentSource supplies, per topic, the localized display name plus two
// locale-aligned name lists: works by the topic and works not by the topic.
type ContentSource interface {
	TopicWorks(ctx context.Context, topic string) (*model.TopicWorks, error)
}

// DBPediaClient queries the DBpedia SPARQL endpoint for film candidates
// around a director topic.
type DBPediaClient struct {
	endpoint string
	limit    int
	client   *http.Client
}

// NewDBPediaClient creates a content source capped at limit candidates per
// pool.
func NewDBPediaClient(endpoint string, limit int) *DBPediaClient {
	return &DBPediaClient{
		endpoint: endpoint,
		limit:    limit,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// TopicWorks loads the topic's display names and both candidate pools. A
// topic with no related works is reported as ErrContentUnavailable.
func (c *DBPediaClient) TopicWorks(ctx context.Context, topic string) (*model.TopicWorks, error) {
	name, err := c.resourceName(ctx, topic)
	if err != nil {
		return nil, err
	}

	related, err := c.films(ctx, topic, true)
	if err != nil {
		return nil, err
	}
	if related.Len() == 0 {
		return nil, fmt.Errorf("no works for topic %s: %w", topic, model.ErrContentUnavailable)
	}

	unrelated, err := c.films(ctx, topic, false)
	if err != nil {
		return nil, err
	}

	return &model.TopicWorks{Name: name, Related: related, Unrelated: unrelated}, nil
}

func (c *DBPediaClient) resourceName(ctx context.Context, topic string) (model.LocalizedText, error) {
	query := fmt.Sprintf(`SELECT ?en ?de WHERE {
  dbr:%s rdfs:label ?en . FILTER(lang(?en) = "en")
  dbr:%s rdfs:label ?de . FILTER(lang(?de) = "de")
} LIMIT 1`, topic, topic)

	rows, err := c.query(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		// Fall back to the resource identifier in both locales.
		fallback := strings.ReplaceAll(topic, "_", " ")
		return model.LocalizedText{model.LocaleEN: fallback, model.LocaleDE: fallback}, nil
	}
	return model.LocalizedText{
		model.LocaleEN: rows[0][0],
		model.LocaleDE: rows[0][1],
	}, nil
}

// films fetches locale-aligned film labels either directed by the topic or,
// when related is false, explicitly not directed by it.
func (c *DBPediaClient) films(ctx context.Context, topic string, related bool) (model.NameList, error) {
	clause := fmt.Sprintf("?film dbo:director dbr:%s .", topic)
	if !related {
		clause = fmt.Sprintf("FILTER NOT EXISTS { ?film dbo:director dbr:%s }", topic)
	}

	query := fmt.Sprintf(`SELECT DISTINCT ?en ?de WHERE {
  ?film a dbo:Film .
  %s
  ?film rdfs:label ?en . FILTER(lang(?en) = "en")
  ?film rdfs:label ?de . FILTER(lang(?de) = "de")
} LIMIT %d`, clause, c.limit)

	rows, err := c.query(ctx, query)
	if err != nil {
		return model.NameList{}, err
	}

	var list model.NameList
	for _, row := range rows {
		list.English = append(list.English, row[0])
		list.German = append(list.German, row[1])
	}
	return list, nil
}

// query runs a SPARQL SELECT with two projected variables (?en, ?de) and
// returns the bound values per result row.
func (c *DBPediaClient) query(ctx context.Context, sparql string) ([][2]string, error) {
	prefixes := `PREFIX dbr: <http://dbpedia.org/resource/>
PREFIX dbo: <http://dbpedia.org/ontology/>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
`

	params := url.Values{}
	params.Set("query", prefixes+sparql)
	params.Set("format", "application/sparql-results+json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sparql request failed: %w", model.ErrContentUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sparql endpoint returned %d: %w", resp.StatusCode, model.ErrContentUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Results struct {
			Bindings []map[string]struct {
				Value string `json:"value"`
			} `json:"bindings"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("invalid sparql response: %w", err)
	}

	rows := make([][2]string, 0, len(parsed.Results.Bindings))
	for _, b := range parsed.Results.Bindings {
		en, okEN := b["en"]
		de, okDE := b["de"]
		if !okEN || !okDE {
			continue
		}
		rows = append(rows, [2]string{en.Value, de.Value})
	}
	return rows, nil
}
