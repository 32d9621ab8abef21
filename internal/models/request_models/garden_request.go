package request_models

type BuyPlantObjRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

type LocationPatchRequest struct {
	X           int  `json:"x"`
	Y           int  `json:"y"`
	IsInstalled bool `json:"is_installed"`
}

type RegisterLeafRequest struct {
	LeafID string `json:"leaf_id" binding:"required,uuid"`
}
