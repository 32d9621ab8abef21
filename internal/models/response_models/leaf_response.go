package response_models

type JournalResponse struct {
	JournalID string `json:"journal_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	CreatedAt int64  `json:"created_at"`
}

type LeafResponse struct {
	LeafID       string            `json:"leaf_id"`
	LeafName     string            `json:"leaf_name"`
	Content      string            `json:"content"`
	LeafImageURL string            `json:"leaf_image_url"`
	PlantObjID   *string           `json:"plant_obj_id,omitempty"`
	Journals     []JournalResponse `json:"journals,omitempty"`
}
