package model

// UploadTeamLogoRequest represents the request payload for uploading a team logo
type UploadTeamLogoRequest struct {
	Image string `json:"image" binding:"required,imagedatauri"` // data:image/<subtype>;base64,<payload>
}

// UploadURL is the body of a successful upload
type UploadURL struct {
	URL string `json:"url"`
}

// UploadTeamLogoResponse wraps the upload result the way the rest of the API does
type UploadTeamLogoResponse struct {
	Data UploadURL `json:"data"`
}

// FieldError describes one failed validation rule
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope for every non-2xx response
type ErrorResponse struct {
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

// HealthResponse is returned by the health probe
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
