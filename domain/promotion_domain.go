package domain

import (
	"errors"
	"time"
)

const (
	PromotionStatusPending = "Pending"
	PromotionStatusSettled = "Settled"
	PromotionStatusFailed  = "Failed"

	// Price per promoted day in IDR.
	PromotionDailyPrice = 15000
)

var (
	MessageSuccessCreatePromotion = "promotion order created successfully"
	MessageSuccessGetPromotions   = "promotion orders retrieved successfully"

	MessageFailedCreatePromotion = "failed to create promotion order"
	MessageFailedGetPromotions   = "failed to retrieve promotion orders"

	ErrPromotionNotFound = errors.New("promotion order not found")
	ErrPaymentFailed     = errors.New("payment gateway rejected the transaction")
	ErrInvalidDuration   = errors.New("promotion duration must be between 1 and 30 days")
)

type (
	CreatePromotionRequest struct {
		Days  int    `json:"days" validate:"required,min=1,max=30"`
		Email string `json:"email" validate:"required,email"`
	}

	CreatePromotionResponse struct {
		OrderID    string `json:"order_id"`
		Amount     int64  `json:"amount"`
		InvoiceURL string `json:"invoice_url"`
	}

	PromotionWebhookRequest struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}

	PromotionOrderResponse struct {
		OrderID    string     `json:"order_id"`
		Days       int        `json:"days"`
		Amount     int64      `json:"amount"`
		Status     string     `json:"status"`
		InvoiceURL string     `json:"invoice_url,omitempty"`
		PaidAt     *time.Time `json:"paid_at,omitempty"`
		CreatedAt  time.Time  `json:"created_at"`
	}
)
