package dto

import (
	"time"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
)

type TourResponse struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Capacity    int    `json:"capacity"`
	Active      bool   `json:"active"`
	TourDate    string `json:"tour_date,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type TourWithRemainingResponse struct {
	TourResponse
	Remaining int `json:"remaining"`
}

type TourPageResponse struct {
	Tours      []TourWithRemainingResponse `json:"tours"`
	Total      int64                       `json:"total"`
	Page       int                         `json:"page"`
	Limit      int                         `json:"limit"`
	TotalPages int64                       `json:"total_pages"`
}

type TicketResponse struct {
	TicketID    string `json:"ticket_id"`
	TourID      string `json:"tour_id"`
	UserID      string `json:"user_id"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"total"`
	Status      string `json:"status"`
	PurchasedAt string `json:"purchased_at"`
}

type TicketSummaryResponse struct {
	TicketResponse
	Tour TourResponse `json:"tour"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToTourResponse(t *domain.Tour) TourResponse {
	resp := TourResponse{
		ID:          t.ID,
		Destination: t.Destination,
		Description: t.Description,
		Price:       t.Price,
		Capacity:    t.Capacity,
		Active:      t.Active,
		ImageURL:    t.ImageURL,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.TourDate != nil {
		resp.TourDate = t.TourDate.Format(time.RFC3339)
	}

	return resp
}

func ToTourPageResponse(p *domain.TourPage) TourPageResponse {
	tours := make([]TourWithRemainingResponse, 0, len(p.Tours))
	for _, t := range p.Tours {
		tours = append(tours, TourWithRemainingResponse{
			TourResponse: ToTourResponse(&t.Tour),
			Remaining:    t.Remaining,
		})
	}

	return TourPageResponse{
		Tours:      tours,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		TicketID:    t.ID,
		TourID:      t.TourID,
		UserID:      t.UserID,
		Quantity:    t.Quantity,
		Total:       t.Total,
		Status:      string(t.Status),
		PurchasedAt: t.PurchasedAt.Format(time.RFC3339),
	}
}

func ToTicketSummaryResponse(s *domain.TicketSummary) TicketSummaryResponse {
	return TicketSummaryResponse{
		TicketResponse: ToTicketResponse(&s.Ticket),
		Tour:           ToTourResponse(&s.Tour),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
