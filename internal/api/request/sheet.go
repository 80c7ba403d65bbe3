package request

// CreateSheetRequest represents the request body for creating a sheet
type CreateSheetRequest struct {
	Name string `json:"name"`
}

// SelectSheetRequest represents the request body for selecting the active sheet
type SelectSheetRequest struct {
	ID string `json:"id"`
}
