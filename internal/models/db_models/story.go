package db_models

type Story struct {
	BaseModel
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Crop        string  `json:"crop"`
	Revenue     float64 `json:"revenue"`
	Testimonial string  `json:"testimonial"`
}
