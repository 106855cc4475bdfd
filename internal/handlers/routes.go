package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the short URL API.
func RegisterRoutes(api huma.API, shortURLHandler *ShortURLHandler) {
	// POST /api/shorturl - Register a URL
	createBody := &huma.RequestBody{
		Description: "Form or JSON document with a `url` field.",
		Content: map[string]*huma.MediaType{
			"application/x-www-form-urlencoded": {},
			"application/json":                  {},
		},
	}

	huma.Register(api, huma.Operation{
		OperationID: "create-short-url",
		Method:      http.MethodPost,
		Path:        "/api/shorturl",
		Summary:     "Create short URL",
		Description: "Validates the URL, checks that its host resolves and returns its short identifier. " +
			"Resubmitting a stored URL returns the existing identifier. Failures are reported with status 200.",
		Tags:        []string{"URLs"},
		RequestBody: createBody,
	}, shortURLHandler.CreateShortURL)

	// huma requires raw bodies; an empty one must still answer "invalid url".
	createBody.Required = false

	// GET /api/shorturl/{id} - Redirect to original URL
	huma.Register(api, huma.Operation{
		OperationID: "redirect-short-url",
		Method:      http.MethodGet,
		Path:        "/api/shorturl/{id}",
		Summary:     "Redirect to original URL",
		Description: "Redirects to the original URL registered under the identifier.",
		Tags:        []string{"URLs"},
	}, shortURLHandler.RedirectToURL)

	huma.Register(api, huma.Operation{
		OperationID: "hello",
		Method:      http.MethodGet,
		Path:        "/api/hello",
		Summary:     "Greeting",
		Tags:        []string{"Misc"},
	}, Hello)
}

// NewConfig returns the huma configuration of the API. Responses carry no
// $schema link so bodies keep their documented shape.
func NewConfig() huma.Config {
	config := huma.DefaultConfig("URL Shortener", "1.0.0")
	config.CreateHooks = nil

	return config
}
