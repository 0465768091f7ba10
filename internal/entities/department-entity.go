package entities

// Department is immutable once created: there is no update endpoint.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
