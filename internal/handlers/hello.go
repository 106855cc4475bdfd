package handlers

import "context"

// Hello answers the greeting endpoint.
func Hello(_ context.Context, _ *struct{}) (*HelloResponse, error) {
	resp := &HelloResponse{}
	resp.Body.Greeting = "hello API"

	return resp, nil
}
