package catalog

type CreateSpaceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	HourlyRate  float64 `json:"hourly_rate" binding:"gte=0"`
	Equipment   string  `json:"equipment"`
	ImageURL    string  `json:"image_url"`
}

type UpdateSpaceRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Location    string   `json:"location"`
	Capacity    int      `json:"capacity"`
	Category    string   `json:"category"`
	HourlyRate  *float64 `json:"hourly_rate"`
	Equipment   *string  `json:"equipment"`
	ImageURL    *string  `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
}
