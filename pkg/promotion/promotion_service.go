package promotion

import (
	"context"
	"errors"
	"fmt"
	"streetbite-backend/domain"
	"streetbite-backend/entities"
	"streetbite-backend/internal/utils"
	"streetbite-backend/pkg/vendor"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PromotionService interface {
		CreatePromotion(ctx context.Context, req domain.CreatePromotionRequest, userID string) (domain.CreatePromotionResponse, error)
		HandleWebhook(ctx context.Context, req domain.PromotionWebhookRequest) error
		GetVendorPromotions(ctx context.Context, userID string) ([]domain.PromotionOrderResponse, error)
	}

	promotionService struct {
		promotionRepository PromotionRepository
		vendorRepository    vendor.VendorRepository
		snapClient          snap.Client
	}
)

func NewPromotionService(promotionRepository PromotionRepository, vendorRepository vendor.VendorRepository) PromotionService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &promotionService{
		promotionRepository: promotionRepository,
		vendorRepository:    vendorRepository,
		snapClient:          client,
	}
}

func (s *promotionService) CreatePromotion(ctx context.Context, req domain.CreatePromotionRequest, userID string) (domain.CreatePromotionResponse, error) {
	if req.Days < 1 || req.Days > 30 {
		return domain.CreatePromotionResponse{}, domain.ErrInvalidDuration
	}

	owner, err := s.vendorRepository.GetVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreatePromotionResponse{}, domain.ErrVendorNotFound
		}
		return domain.CreatePromotionResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreatePromotionResponse{}, domain.ErrParseUUID
	}

	amount := int64(req.Days) * domain.PromotionDailyPrice
	orderID := fmt.Sprintf("promo-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreatePromotionResponse{}, domain.ErrPaymentFailed
	}

	order := &entities.PromotionOrder{
		ID:         uuid.New(),
		VendorID:   owner.ID,
		UserID:     userUUID,
		OrderID:    orderID,
		Days:       req.Days,
		Amount:     amount,
		Status:     domain.PromotionStatusPending,
		InvoiceURL: snapResp.RedirectURL,
	}

	if err := s.promotionRepository.CreateOrder(ctx, order); err != nil {
		return domain.CreatePromotionResponse{}, err
	}

	return domain.CreatePromotionResponse{
		OrderID:    orderID,
		Amount:     amount,
		InvoiceURL: snapResp.RedirectURL,
	}, nil
}

// HandleWebhook settles or fails a pending order based on the gateway
// callback. Settlement extends the vendor's promoted window.
func (s *promotionService) HandleWebhook(ctx context.Context, req domain.PromotionWebhookRequest) error {
	order, err := s.promotionRepository.GetOrderByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPromotionNotFound
		}
		return err
	}

	switch req.TransactionStatus {
	case "settlement", "capture":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			return nil
		}
		if order.Status == domain.PromotionStatusSettled {
			return nil
		}

		now := time.Now()
		order.Status = domain.PromotionStatusSettled
		order.PaidAt = &now
		if err := s.promotionRepository.UpdateOrder(ctx, order); err != nil {
			return err
		}

		start := now
		if current, err := s.vendorRepository.GetVendorByID(ctx, order.VendorID.String()); err == nil {
			if current.PromotedUntil != nil && current.PromotedUntil.After(start) {
				start = *current.PromotedUntil
			}
		}
		until := start.AddDate(0, 0, order.Days)
		return s.promotionRepository.ExtendVendorPromotion(ctx, order.VendorID.String(), until)
	case "cancel", "deny", "expire", "failure":
		order.Status = domain.PromotionStatusFailed
		return s.promotionRepository.UpdateOrder(ctx, order)
	}

	return nil
}

func (s *promotionService) GetVendorPromotions(ctx context.Context, userID string) ([]domain.PromotionOrderResponse, error) {
	owner, err := s.vendorRepository.GetVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}

	orders, err := s.promotionRepository.GetOrdersByVendor(ctx, owner.ID.String())
	if err != nil {
		return nil, err
	}

	response := make([]domain.PromotionOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, domain.PromotionOrderResponse{
			OrderID:    o.OrderID,
			Days:       o.Days,
			Amount:     o.Amount,
			Status:     o.Status,
			InvoiceURL: o.InvoiceURL,
			PaidAt:     o.PaidAt,
			CreatedAt:  o.CreatedAt,
		})
	}
	return response, nil
}
