package payload

import (
	"fmt"
	"strconv"
	"time"

	"paysched/internal/core"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type ScheduleRequest struct {
	RecipientAddress string `json:"recipientAddress"`
	Message          string `json:"message"`
	Amount           string `json:"amount"`
	ScheduledDate    string `json:"scheduledDate"`
}

func (s ScheduleRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.RecipientAddress, validation.Required, addressRule),
		validation.Field(&s.Message, validation.Required, validation.Length(1, 256)),
		validation.Field(&s.Amount, validation.Required, amountRule),
		validation.Field(&s.ScheduledDate, validation.Required, dateRule),
	)
}

func (s ScheduleRequest) ToCore() (core.ScheduleRequest, error) {
	amount, err := parseAmount(s.Amount)
	if err != nil {
		return core.ScheduleRequest{}, err
	}
	scheduled, _, err := parseDate(s.ScheduledDate)
	if err != nil {
		return core.ScheduleRequest{}, fmt.Errorf("parse scheduled date: %w", err)
	}

	return core.ScheduleRequest{
		RecipientAddress: s.RecipientAddress,
		Message:          s.Message,
		Amount:           amount,
		ScheduledDate:    scheduled,
	}, nil
}

type ExecuteRequest struct {
	ID string `json:"id"`
}

func (e ExecuteRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ID, validation.Required),
	)
}

type InstantRequest struct {
	RecipientAddress string `json:"recipientAddress"`
	Amount           string `json:"amount"`
}

func (i InstantRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.RecipientAddress, validation.Required, addressRule),
		validation.Field(&i.Amount, validation.Required, amountRule),
	)
}

func (i InstantRequest) ToCore() (core.TransferRequest, error) {
	amount, err := parseAmount(i.Amount)
	if err != nil {
		return core.TransferRequest{}, err
	}
	return core.TransferRequest{
		RecipientAddress: i.RecipientAddress,
		Amount:           amount,
	}, nil
}

// RangeQuery holds the optional start and end query parameters.
type RangeQuery struct {
	Start string
	End   string
}

func (q RangeQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Start, dateRule),
		validation.Field(&q.End, dateRule),
	)
}

// ToRange converts the bounds. A date-only end covers that whole day.
func (q RangeQuery) ToRange() (core.DateRange, error) {
	var rng core.DateRange
	if q.Start != "" {
		from, _, err := parseDate(q.Start)
		if err != nil {
			return core.DateRange{}, fmt.Errorf("parse start: %w", err)
		}
		rng.From = &from
	}
	if q.End != "" {
		to, dateOnly, err := parseDate(q.End)
		if err != nil {
			return core.DateRange{}, fmt.Errorf("parse end: %w", err)
		}
		if dateOnly {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		rng.To = &to
	}
	return rng, nil
}

type HistoryQuery struct {
	Limit string
}

func (q HistoryQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Limit, validation.Match(limitRegex).Error("must be a non-negative integer")),
	)
}

// ToLimit returns 0 when no limit was given.
func (q HistoryQuery) ToLimit() (int, error) {
	if q.Limit == "" {
		return 0, nil
	}
	return strconv.Atoi(q.Limit)
}

type BalanceQuery struct {
	Address string
}

func (q BalanceQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Address, validation.Required, addressRule),
	)
}

type FeeQuery struct {
	Amount string
}

func (q FeeQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Amount, validation.Required, amountRule),
	)
}

func (q FeeQuery) ToAmount() (decimal.Decimal, error) {
	return parseAmount(q.Amount)
}
