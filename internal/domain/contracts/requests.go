package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type FundCreateRequest struct {
	OwnerId     ulid.ULID
	StartDate   time.Time
	EndDate     time.Time
	PaymentType string
	Amount      float64
}

type MemberAddRequest struct {
	FundId    ulid.ULID
	OwnerId   ulid.ULID
	FirstName string
	LastName  string
	Count     int
}

type ContributionAddRequest struct {
	MemberId ulid.ULID
	FundId   ulid.ULID
	OwnerId  ulid.ULID
	Amount   float64
	DatePaid *time.Time
}
