package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
	"github.com/oksasatya/store-admin-api/pkg/helpers"
	"github.com/oksasatya/store-admin-api/pkg/mailer"
)

// CheckoutService creates unpaid orders on behalf of the public storefront
// and answers with a redirect URL back to the cart page. Queue publishing is
// best effort; a dead broker must never block an order.
type CheckoutService struct {
	Products    repository.ProductRepository
	Orders      repository.OrderRepository
	Publisher   *helpers.RabbitPublisher
	FrontendURL string
	Logger      *logrus.Logger
}

func NewCheckoutService(products repository.ProductRepository, orders repository.OrderRepository, pub *helpers.RabbitPublisher, frontendURL string, logger *logrus.Logger) *CheckoutService {
	return &CheckoutService{
		Products:    products,
		Orders:      orders,
		Publisher:   pub,
		FrontendURL: frontendURL,
		Logger:      logger,
	}
}

// Checkout records one order item per requested product id, duplicates
// included so quantity survives as repeated lines. It returns the storefront
// cart URL with a success or canceled marker.
func (s *CheckoutService) Checkout(ctx context.Context, storeID string, in CheckoutInput) string {
	if found, err := s.Products.GetManyByIDs(ctx, in.ProductIDs); err != nil {
		s.Logger.WithError(err).Warn("checkout product lookup failed")
	} else if len(found) != len(dedupe(in.ProductIDs)) {
		s.Logger.WithFields(logrus.Fields{
			"requested": len(in.ProductIDs),
			"found":     len(found),
		}).Warn("checkout references unknown products")
	}

	order := &entity.Order{
		StoreID:    storeID,
		IsPaid:     false,
		OrderItems: make([]entity.OrderItem, len(in.ProductIDs)),
	}
	for i, pid := range in.ProductIDs {
		order.OrderItems[i] = entity.OrderItem{ProductID: pid}
	}

	if err := s.Orders.Create(ctx, order); err != nil {
		s.Logger.WithError(err).Error("checkout order create failed")
		return s.FrontendURL + "/cart?canceled=1"
	}

	s.publishOrderJob(ctx, order, in.ProductIDs)
	return s.FrontendURL + "/cart?success=1"
}

func (s *CheckoutService) publishOrderJob(ctx context.Context, order *entity.Order, productIDs []string) {
	if s.Publisher == nil {
		return
	}
	job := mailer.OrderJob{
		OrderID:    order.ID,
		StoreID:    order.StoreID,
		ProductIDs: productIDs,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("order_id", order.ID).Warn("order job publish failed")
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
