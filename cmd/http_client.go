package main

import (
	"net/http"
)

func (a *App) initHTTPClient() {
	// Per-call deadlines come from request contexts; the client itself
	// carries no timeout so it never undercuts a caller's bound.
	a.HTTPClient = &http.Client{}
}
