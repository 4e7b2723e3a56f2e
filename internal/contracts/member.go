package contracts

import (
	"time"

	"github.com/Perod122/SinkIt/internal/domain/member"
)

type MemberAddRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	Count     int    `json:"count" binding:"omitempty,gte=0"`
}

type MemberResponse struct {
	Id        string    `json:"id"`
	FundId    string    `json:"fundId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToMemberResponse(m *member.Member) MemberResponse {
	return MemberResponse{
		Id:        m.Id.String(),
		FundId:    m.FundId.String(),
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Count:     m.Count,
		CreatedAt: m.CreatedAt,
	}
}
