package paymentlinks

// LinkResponse is the registry's single-link payload.
type LinkResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// LinkListResponse is the registry's full-listing payload.
type LinkListResponse struct {
	Links []LinkResponse `json:"links"`
}
