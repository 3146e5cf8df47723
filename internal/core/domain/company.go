package domain

// Company represents a billable company in the domain, identified by a unique
// short code supplied by the client. The code is immutable after creation.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
