package dto

import (
	"time"

	"github.com/Yashshinde43/tinyurl/internal/domain"
)

type LinkResponse struct {
	Code        string     `json:"code"`
	TargetURL   string     `json:"target_url"`
	ShortURL    string     `json:"short_url"`
	TotalClicks int64      `json:"total_clicks"`
	LastClicked *time.Time `json:"last_clicked"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromDomain(l domain.Link, baseURL string) LinkResponse {
	return LinkResponse{
		Code:        l.Code,
		TargetURL:   l.TargetURL,
		ShortURL:    baseURL + "/" + l.Code,
		TotalClicks: l.TotalClicks,
		LastClicked: l.LastClicked,
		CreatedAt:   l.CreatedAt,
	}
}
