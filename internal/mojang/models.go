package mojang

// profileResponse is the body of both profile endpoints.
type profileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Profile is a resolved player identity.
type Profile struct {
	// ID is the undashed uuid as returned by the API.
	ID   string
	Name string
}
