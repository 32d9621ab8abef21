package response_models

type AccountCreatedResponse struct {
	AccountID string `json:"account_id"`
}

type AccountLoginResponse struct {
	Token string `json:"token"`
}

type AccountResponse struct {
	AccountID       string `json:"account_id"`
	DisplayName     string `json:"display_name"`
	ProfileImageURL string `json:"profile_image_url"`
	Point           int    `json:"point"`
	Grade           string `json:"grade"`
	Attendance      bool   `json:"attendance"`
}
