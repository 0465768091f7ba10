package dto

// ImportRowError reports one rejected row; Row is the 1-based position
// among the data rows (the header row is not counted).
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResultDTO is the terminal outcome of an import: partial success is
// a valid result, never a transaction failure.
type ImportResultDTO struct {
	Success  bool             `json:"success"`
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Total    int              `json:"total"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
