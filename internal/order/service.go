package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmtumanov/beanline-backend/internal/cart"
	"github.com/dmtumanov/beanline-backend/internal/promo"
	"github.com/dmtumanov/beanline-backend/pkg/db/models"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
	"github.com/dmtumanov/beanline-backend/pkg/metrics"
	"github.com/dmtumanov/beanline-backend/pkg/types"
	"github.com/google/uuid"
)

// HostSender is the outbound surface the checkout path needs.
type HostSender interface {
	SendOrder(ctx context.Context, payload types.OrderPayload) error
}

// CheckoutInput carries the submission parameters alongside the cart.
type CheckoutInput struct {
	PickupMode enums.PickupMode
	PickupTime string
	Comment    string
	PromoCode  string
}

// CheckoutResult reports a successfully submitted order.
type CheckoutResult struct {
	OrderID         uuid.UUID          `json:"order_id"`
	Total           int                `json:"total"`
	PayableTotal    int                `json:"payable_total"`
	PromoCode       string             `json:"promo_code,omitempty"`
	DiscountPercent int                `json:"discount_percent,omitempty"`
	Payload         types.OrderPayload `json:"payload"`
}

// Service drives checkout: gates, promo application, persistence and host
// dispatch.
type Service struct {
	carts   *cart.Manager
	promo   promo.Service
	repo    Repository
	host    HostSender
	metrics *metrics.OrderMetrics
	logg    *logger.Logger

	minTotal int
	now      func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService wires the checkout service.
func NewService(
	carts *cart.Manager,
	promoSvc promo.Service,
	repo Repository,
	host HostSender,
	orderMetrics *metrics.OrderMetrics,
	logg *logger.Logger,
	minTotal int,
) *Service {
	return &Service{
		carts:    carts,
		promo:    promoSvc,
		repo:     repo,
		host:     host,
		metrics:  orderMetrics,
		logg:     logg,
		minTotal: minTotal,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// Checkout submits the customer's cart to the host. Only one submission per
// customer may be in flight; a second concurrent attempt is refused without
// touching the cart.
func (s *Service) Checkout(ctx context.Context, customerKey string, input CheckoutInput) (*CheckoutResult, error) {
	if !s.acquire(customerKey) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "an order submission is already in progress")
	}
	defer s.release(customerKey)

	ctx = s.logg.WithCustomerID(ctx, customerKey)

	snapshot := s.carts.Snapshot(customerKey)
	if len(snapshot.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cannot submit an empty cart")
	}

	total := snapshot.Total
	payable := total
	appliedCode := ""
	appliedPercent := 0

	if input.PromoCode != "" {
		isFirst, err := s.isFirstOrder(ctx, customerKey)
		if err != nil {
			return nil, err
		}
		result, err := s.promo.Apply(ctx, input.PromoCode, total, isFirst)
		if err != nil {
			return nil, err
		}
		payable = result.PayableTotal
		appliedCode = result.Code
		appliedPercent = result.DiscountPercent
	}

	if payable < s.minTotal {
		return nil, pkgerrors.New(pkgerrors.CodeBelowMinimumOrder,
			fmt.Sprintf("payable total %d is below the minimum of %d", payable, s.minTotal)).
			WithDetails(map[string]any{"payable_total": payable, "minimum": s.minTotal})
	}

	pickupTime, err := ResolvePickupTime(input.PickupMode, input.PickupTime)
	if err != nil {
		return nil, err
	}

	payload := BuildPayload(snapshot.Lines, payable, pickupTime, input.Comment)

	record := s.buildRecord(customerKey, snapshot, payload, total, payable, appliedCode, appliedPercent)
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}
	ctx = s.logg.WithField(ctx, "order_id", record.ID.String())

	action := string(enums.HostActionOrder)
	started := s.now()
	sendErr := s.host.SendOrder(ctx, payload)
	s.metrics.ObserveDuration(action, s.now().Sub(started))

	if sendErr != nil {
		s.metrics.IncFailure(action, failureReason(sendErr))
		if markErr := s.repo.MarkFailed(ctx, record.ID); markErr != nil {
			s.logg.Error(ctx, "marking order failed", markErr)
		}
		s.logg.Error(ctx, "order submission failed", sendErr)
		return nil, sendErr
	}

	s.metrics.IncSuccess(action)
	if err := s.repo.MarkSubmitted(ctx, record.ID, s.now()); err != nil {
		s.logg.Error(ctx, "marking order submitted", err)
	}
	s.carts.Clear(customerKey)
	s.logg.Info(ctx, "order submitted")

	return &CheckoutResult{
		OrderID:         record.ID,
		Total:           total,
		PayableTotal:    payable,
		PromoCode:       appliedCode,
		DiscountPercent: appliedPercent,
		Payload:         payload,
	}, nil
}

// IsFirstOrder reports whether the customer has never successfully
// submitted an order.
func (s *Service) IsFirstOrder(ctx context.Context, customerKey string) (bool, error) {
	return s.isFirstOrder(ctx, customerKey)
}

func (s *Service) isFirstOrder(ctx context.Context, customerKey string) (bool, error) {
	has, err := s.repo.HasSubmittedOrder(ctx, customerKey)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check order history")
	}
	return !has, nil
}

func (s *Service) buildRecord(
	customerKey string,
	snapshot cart.Snapshot,
	payload types.OrderPayload,
	total, payable int,
	promoCode string,
	discountPercent int,
) *models.Order {
	record := &models.Order{
		ID:           uuid.New(),
		CustomerKey:  customerKey,
		Status:       enums.OrderStatusPending,
		Total:        total,
		PayableTotal: payable,
		PickupTime:   payload.PickupTime,
		Comment:      payload.Comment,
	}
	if promoCode != "" {
		record.PromoCode = &promoCode
		record.DiscountPercent = &discountPercent
	}

	items := payload.Items
	record.Lines = make([]models.OrderLineItem, 0, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		record.Lines = append(record.Lines, models.OrderLineItem{
			ID:         uuid.New(),
			ProductID:  line.ProductID,
			Name:       line.ProductName,
			Size:       line.Size,
			Quantity:   line.Quantity,
			TotalPrice: line.TotalPrice,
			UnitPrice:  items[i].Price,
			Details:    items[i].Details,
		})
	}
	return record
}

func (s *Service) acquire(customerKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[customerKey]; busy {
		return false
	}
	s.inFlight[customerKey] = struct{}{}
	return true
}

func (s *Service) release(customerKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, customerKey)
}

func failureReason(err error) string {
	if domainErr := pkgerrors.As(err); domainErr != nil {
		switch domainErr.Code() {
		case pkgerrors.CodeSubmissionTimeout:
			return "timeout"
		case pkgerrors.CodeSubmissionTransport:
			return "transport"
		}
	}
	return "other"
}
