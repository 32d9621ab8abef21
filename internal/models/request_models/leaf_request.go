package request_models

type LeafPostRequest struct {
	LeafName string `form:"leaf_name" json:"leaf_name" binding:"required,max=50"`
	Content  string `form:"content" json:"content"`
}

type LeafPatchRequest struct {
	LeafName string `form:"leaf_name" json:"leaf_name" binding:"omitempty,max=50"`
	Content  string `form:"content" json:"content"`
}

type JournalPostRequest struct {
	Title   string `form:"title" json:"title" binding:"required,max=100"`
	Content string `form:"content" json:"content"`
}
