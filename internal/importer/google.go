package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	people "google.golang.org/api/people/v1"
)

// NewOAuthConfig creates the OAuth2 config for the Google People API.
// Users create their own OAuth app in Google Cloud Console; credentials come
// from the environment (a .env file is honored).
func NewOAuthConfig() (*oauth2.Config, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  "http://localhost:8080/oauth/callback",
		Scopes:       []string{"https://www.googleapis.com/auth/contacts.readonly"},
		Endpoint:     google.Endpoint,
	}, nil
}

// LoadToken reads a previously granted OAuth token from disk
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("decode token file: %w", err)
	}
	return &token, nil
}

// FetchGoogleContacts pulls the user's Google contact list: display name and
// first phone number only, paginated until exhausted.
func FetchGoogleContacts(ctx context.Context, token *oauth2.Token) ([]Record, error) {
	cfg, err := NewOAuthConfig()
	if err != nil {
		return nil, err
	}

	service, err := people.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("create People service: %w", err)
	}

	var records []Record
	pageToken := ""
	for {
		call := service.People.Connections.List("people/me").
			PageSize(1000).
			PersonFields("names,phoneNumbers")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("fetch contacts: %w", err)
		}
		if response == nil || len(response.Connections) == 0 {
			break
		}

		for _, person := range response.Connections {
			rec := convertPerson(person)
			if rec.Name == "" || rec.Phone == "" {
				continue
			}
			records = append(records, rec)
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return records, nil
}

func convertPerson(p *people.Person) Record {
	var rec Record
	if len(p.Names) > 0 {
		rec.Name = p.Names[0].DisplayName
	}
	if len(p.PhoneNumbers) > 0 {
		rec.Phone = p.PhoneNumbers[0].Value
	}
	return rec
}
