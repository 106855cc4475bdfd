package handlers

// CreateShortURLRequest is the request for registering a URL. The body is a
// form or JSON document with a url field.
type CreateShortURLRequest struct {
	ContentType string `doc:"Body media type" header:"Content-Type"`
	RawBody     []byte
}

// CreateShortURLResponse is the response for a registered URL.
type CreateShortURLResponse struct {
	Body struct {
		OriginalURL string `doc:"The URL exactly as submitted" example:"https://www.freecodecamp.org" json:"original_url"`
		ShortURL    int64  `doc:"The short identifier"         example:"1"                            json:"short_url"`
	}
}

// RedirectRequest is the request for resolving a short URL.
type RedirectRequest struct {
	ID string `doc:"The short identifier" example:"1" path:"id"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status   int
	Location string `doc:"The original URL" header:"Location"`
}

// HelloResponse is the response of the greeting endpoint.
type HelloResponse struct {
	Body struct {
		Greeting string `example:"hello API" json:"greeting"`
	}
}
