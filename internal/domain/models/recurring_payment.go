package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RecurringPaymentCollection = "recurring"

type RecurringPaymentStatus string

const (
	RecurringPaymentStatusActive    RecurringPaymentStatus = "ACTIVE"
	RecurringPaymentStatusExpired   RecurringPaymentStatus = "EXPIRED"
	RecurringPaymentStatusSuspended RecurringPaymentStatus = "SUSPENDED"
	RecurringPaymentStatusCancelled RecurringPaymentStatus = "CANCELLED"
)

// DefaultPaymentHorizon is how far ahead payments are generated unless
// configured otherwise.
const DefaultPaymentHorizon = 365 * 24 * time.Hour

// CronParser accepts six fields, the first one being seconds.
var CronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ParseCronSchedule reads a six field schedule. Days of week count from
// Sunday=0, and Sunday may also be written as 7 so Monday=1 to Sunday=7
// works too.
func ParseCronSchedule(expr string) (cron.Schedule, error) {
	schedule, err := CronParser.Parse(normalizeDayOfWeek(expr))
	if err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", expr, err)
	}
	return schedule, nil
}

func normalizeDayOfWeek(expr string) string {
	fields := strings.Fields(expr)
	if len(fields) != 6 {
		return expr
	}

	var days []string
	for _, part := range strings.Split(fields[5], ",") {
		days = append(days, normalizeDayRange(part)...)
	}
	fields[5] = strings.Join(days, ",")
	return strings.Join(fields, " ")
}

// normalizeDayRange rewrites one list item of the day of week field so that
// 7 becomes 0, splitting ranges ending on 7.
func normalizeDayRange(part string) []string {
	span, step, stepped := strings.Cut(part, "/")
	low, high, ranged := strings.Cut(span, "-")
	if !ranged {
		if span == "7" {
			return []string{"0"}
		}
		if stepped {
			return []string{span + "/" + step}
		}
		return []string{span}
	}
	if high != "7" {
		return []string{part}
	}
	if low == "0" {
		return []string{"0-6" + suffix(step, stepped)}
	}
	if low == "7" {
		return []string{"0"}
	}

	from, err := strconv.Atoi(low)
	if err != nil {
		return []string{part}
	}
	every := 1
	if stepped {
		if every, err = strconv.Atoi(step); err != nil || every <= 0 {
			return []string{part}
		}
	}
	days := []string{low + "-6" + suffix(step, stepped)}
	if (7-from)%every == 0 {
		days = append(days, "0")
	}
	return days
}

func suffix(step string, stepped bool) string {
	if !stepped {
		return ""
	}
	return "/" + step
}

type RecurringPayment struct {
	Id                  primitive.ObjectID     `bson:"_id" json:"id"`
	WorkspaceId         primitive.ObjectID     `bson:"workspace_id" json:"workspaceId"`
	Name                string                 `bson:"name" json:"name"`
	Amount              decimal.Decimal        `bson:"amount" json:"amount"`
	Type                TransactionType        `bson:"type" json:"type"`
	AssetId             primitive.ObjectID     `bson:"asset_id" json:"assetId"`
	WalletId            primitive.ObjectID     `bson:"wallet_id" json:"walletId"`
	PartnerId           *primitive.ObjectID    `bson:"partner_id" json:"partnerId"`
	Notes               string                 `bson:"notes" json:"notes"`
	CronSchedule        string                 `bson:"cron_schedule" json:"cronSchedule"`
	NotBefore           *time.Time             `bson:"not_before" json:"notBefore"`
	NotAfter            *time.Time             `bson:"not_after" json:"notAfter"`
	Status              RecurringPaymentStatus `bson:"status" json:"status"`
	LastTransactionDate *time.Time             `bson:"last_transaction_date" json:"-"`
	CreatedAt           time.Time              `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time              `bson:"updated_at" json:"updatedAt"`

	NextPaymentDate *time.Time `bson:"-" json:"nextPaymentDate"`
	Asset           *Asset     `bson:"asset,omitempty" json:"asset,omitempty"`
	Wallet          *Wallet    `bson:"wallet,omitempty" json:"wallet,omitempty"`
	Partner         *Partner   `bson:"partner,omitempty" json:"partner,omitempty"`
}

// PaymentUpdate is the outcome of regenerating the pending payments.
type PaymentUpdate struct {
	Delete []Transaction `json:"delete"`
	Create []Transaction `json:"create"`
}

// ComputeNextPaymentDate returns the next firing after now, or nil when it
// falls outside of the notBefore/notAfter window.
func (p *RecurringPayment) ComputeNextPaymentDate(now time.Time) *time.Time {
	schedule, err := ParseCronSchedule(p.CronSchedule)
	if err != nil {
		return nil
	}

	next := schedule.Next(now)
	if next.IsZero() {
		return nil
	}
	if p.NotBefore != nil && next.Before(*p.NotBefore) {
		return nil
	}
	if p.NotAfter != nil && next.After(*p.NotAfter) {
		return nil
	}

	return &next
}

func (p *RecurringPayment) CreatePaymentAt(date time.Time) Transaction {
	source := p.Id
	return Transaction{
		WorkspaceId: p.WorkspaceId,
		Name:        p.Name,
		Amount:      p.Amount,
		Date:        date,
		Status:      TransactionStatusOpen,
		Type:        p.Type,
		AssetId:     p.AssetId,
		WalletId:    p.WalletId,
		PartnerId:   p.PartnerId,
		Notes:       p.Notes,
		SourceId:    &source,
	}
}

func (p *RecurringPayment) startDate(now time.Time) time.Time {
	if p.NotBefore != nil && p.NotBefore.After(now) {
		return p.NotBefore.Add(-time.Minute)
	}
	if p.LastTransactionDate != nil {
		return *p.LastTransactionDate
	}
	return now
}

func (p *RecurringPayment) endDate(now time.Time, horizon time.Duration) time.Time {
	limit := now.Add(horizon)
	if p.NotAfter != nil && p.NotAfter.Before(limit) {
		return *p.NotAfter
	}
	return limit
}

// GeneratePayments lists the payments due after the start date up to now
// plus horizon, both evaluated in the location of now. When updateLast is set
// the last transaction date moves forward to the last generated payment.
func (p *RecurringPayment) GeneratePayments(now time.Time, horizon time.Duration, updateLast bool) ([]Transaction, error) {
	if p.Status == RecurringPaymentStatusCancelled || p.Status == RecurringPaymentStatusSuspended {
		return nil, nil
	}

	schedule, err := ParseCronSchedule(p.CronSchedule)
	if err != nil {
		return nil, err
	}

	loc := now.Location()
	end := p.endDate(now, horizon).In(loc)
	current := p.startDate(now).In(loc)

	var payments []Transaction
	for {
		current = schedule.Next(current)
		if current.IsZero() || current.After(end) {
			break
		}
		payments = append(payments, p.CreatePaymentAt(current))
	}

	if updateLast && len(payments) > 0 {
		last := payments[len(payments)-1].Date
		if p.LastTransactionDate == nil || last.After(*p.LastTransactionDate) {
			p.LastTransactionDate = &last
		}
	}

	return payments, nil
}

// UpdatePayments replaces the pending payments with freshly generated ones.
// Unless force is set, user modified payments are kept and no new payment is
// created on their dates.
func (p *RecurringPayment) UpdatePayments(now time.Time, horizon time.Duration, pending []Transaction, force bool) (*PaymentUpdate, error) {
	retained := map[int64]struct{}{}
	purged := []Transaction{}
	for _, tx := range pending {
		if !force && tx.UserModified {
			retained[tx.Date.UnixMilli()] = struct{}{}
			continue
		}
		purged = append(purged, tx)
	}

	p.LastTransactionDate = nil
	generated, err := p.GeneratePayments(now, horizon, true)
	if err != nil {
		return nil, err
	}

	created := []Transaction{}
	for _, tx := range generated {
		if _, ok := retained[tx.Date.UnixMilli()]; ok {
			continue
		}
		created = append(created, tx)
	}

	return &PaymentUpdate{Delete: purged, Create: created}, nil
}

var RecurringPaymentSortFields = SortFields{
	"id":           "_id",
	"name":         "name",
	"amount":       "amount",
	"status":       "status",
	"cronSchedule": "cron_schedule",
	"notBefore":    "not_before",
	"notAfter":     "not_after",
}
