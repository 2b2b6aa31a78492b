package dto

type CreateTourRequest struct {
	Destination string `json:"destination" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
	Active      *bool  `json:"active"`
	TourDate    string `json:"tour_date"`
	ImageURL    string `json:"image_url"`
}

type UpdateTourRequest struct {
	Destination *string `json:"destination"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Capacity    *int    `json:"capacity"`
	TourDate    *string `json:"tour_date"`
	ImageURL    *string `json:"image_url"`
}

type SetTourActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type CreateTicketRequest struct {
	TourID   string `json:"tour_id" binding:"required,uuid"`
	UserID   string `json:"user_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateTicketRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}
