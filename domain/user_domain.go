package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessVerifyEmail = "email verified successfully"
	MessageSuccessSendVerify  = "verification email sent"
	MessageSuccessGetMe       = "user retrieved successfully"
	MessageSuccessUpdateUser  = "user updated successfully"

	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedVerifyEmail = "failed to verify email"
	MessageFailedSendVerify  = "failed to send verification email"
	MessageFailedGetMe       = "failed to retrieve user"
	MessageFailedUpdateUser  = "failed to update user"

	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrAccountNotVerified  = errors.New("account email is not verified")
	ErrInvalidRole         = errors.New("role must be customer or vendor")
	ErrInvalidPhoneNumber  = errors.New("invalid phone number")
	ErrVerificationExpired = errors.New("verification link expired")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Phone    string `json:"phone" validate:"required,min=10,max=13"`
		Pincode  string `json:"pincode" validate:"required,len=6,numeric"`
		Role     string `json:"role" validate:"required,oneof=customer vendor"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name    string `json:"name" validate:"omitempty"`
		Phone   string `json:"phone" validate:"omitempty,min=10,max=13"`
		Pincode string `json:"pincode" validate:"omitempty,len=6,numeric"`
	}

	UserResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Email      string    `json:"email"`
		Phone      string    `json:"phone"`
		Pincode    string    `json:"pincode"`
		Role       string    `json:"role"`
		IsVerified bool      `json:"is_verified"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
