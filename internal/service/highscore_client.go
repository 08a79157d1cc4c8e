package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"jeopardy-server/internal/model"
)

// HighscoreClient submits a finished game's result and returns the opaque
// confirmation token issued by the highscore service.
type HighscoreClient interface {
	Submit(ctx context.Context, record model.HighscoreRecord) (string, error)
}

const highscoreNamespace = "http://big.tuwien.ac.at/we/highscore/data"

type soapEnvelope struct {
	XMLName   xml.Name `xml:"soapenv:Envelope"`
	XmlnsSoap string   `xml:"xmlns:soapenv,attr"`
	XmlnsData string   `xml:"xmlns:data,attr"`
	Header    struct{} `xml:"soapenv:Header"`
	Body      soapBody `xml:"soapenv:Body"`
}

type soapBody struct {
	Request highscoreRequest `xml:"data:HighScoreRequest"`
}

type highscoreRequest struct {
	UserKey  string        `xml:"data:UserKey"`
	UserData highscoreData `xml:"data:UserData"`
}

type highscoreData struct {
	Loser  highscorePlayerXML `xml:"Loser"`
	Winner highscorePlayerXML `xml:"Winner"`
}

type highscorePlayerXML struct {
	Gender    string `xml:"Gender,attr"`
	BirthDate string `xml:"BirthDate,attr"`
	FirstName string `xml:"FirstName"`
	LastName  string `xml:"LastName"`
	Password  string `xml:"Password"`
	Points    int    `xml:"Points"`
}

// SOAPHighscoreClient talks to the publish-highscore SOAP service.
type SOAPHighscoreClient struct {
	url     string
	userKey string
	client  *http.Client
	log     zerolog.Logger
}

// NewSOAPHighscoreClient creates a highscore client authenticated by the
// assigned user key.
func NewSOAPHighscoreClient(url, userKey string, log zerolog.Logger) *SOAPHighscoreClient {
	return &SOAPHighscoreClient{
		url:     url,
		userKey: userKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// Submit posts the record and extracts the HighScoreResponse token.
func (c *SOAPHighscoreClient) Submit(ctx context.Context, record model.HighscoreRecord) (string, error) {
	envelope := soapEnvelope{
		XmlnsSoap: "http://schemas.xmlsoap.org/soap/envelope/",
		XmlnsData: highscoreNamespace,
		Body: soapBody{
			Request: highscoreRequest{
				UserKey: c.userKey,
				UserData: highscoreData{
					Loser:  toPlayerXML(record.Loser),
					Winner: toPlayerXML(record.Winner),
				},
			},
		},
	}

	payload, err := xml.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to build highscore request: %w", err)
	}
	payload = append([]byte(xml.Header), payload...)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", "")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("highscore request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("highscore service returned %d", resp.StatusCode)
	}

	token, err := extractToken(body)
	if err != nil {
		return "", err
	}

	c.log.Info().Str("token", token).Msg("highscore submitted")
	return token, nil
}

func toPlayerXML(p model.HighscorePlayer) highscorePlayerXML {
	return highscorePlayerXML{
		Gender:    string(p.Gender),
		BirthDate: p.BirthDate.Format("2006-01-02"),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Points:    p.Points,
	}
}

// extractToken walks the response envelope for the HighScoreResponse element
// and returns its first non-whitespace text content. Pretty-printed replies
// split the element's text into whitespace-only nodes before the token.
func extractToken(body []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	inResponse := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("invalid highscore response: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "HighScoreResponse" {
				inResponse = true
			}
		case xml.CharData:
			if inResponse {
				if text := bytes.TrimSpace(t); len(text) > 0 {
					return string(text), nil
				}
			}
		case xml.EndElement:
			if t.Name.Local == "HighScoreResponse" {
				inResponse = false
			}
		}
	}
	return "", fmt.Errorf("no token in highscore response")
}
