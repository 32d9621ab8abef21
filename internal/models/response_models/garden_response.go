package response_models

type LocationResponse struct {
	X           int  `json:"x"`
	Y           int  `json:"y"`
	IsInstalled bool `json:"is_installed"`
}

type PlantObjResponse struct {
	PlantObjID string            `json:"plant_obj_id"`
	Product    ProductResponse   `json:"product"`
	LeafID     *string           `json:"leaf_id,omitempty"`
	Location   *LocationResponse `json:"location,omitempty"`
}

type ProductResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	Price     int    `json:"price"`
}

type GardenResponse struct {
	Point     int                `json:"point"`
	PlantObjs []PlantObjResponse `json:"plant_objs"`
}
