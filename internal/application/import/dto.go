package importapp

// ImportResultResponse summarises one upload: how many rows were stored,
// how many were rejected, and the rejection messages in input order.
type ImportResultResponse struct {
	ImportedRows int      `json:"imported_rows"`
	ErrorRows    int      `json:"error_rows"`
	Errors       []string `json:"errors"`
}
