package model

type PaymentRequest struct {
	PatronID    string  `json:"patronId" validate:"required,len=6,numeric"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type PaymentResponse struct {
	Approved      bool   `json:"approved"`
	TransactionID string `json:"transactionId"`
	Detail        string `json:"detail"`
}

type RefundRequest struct {
	TransactionID string  `json:"transactionId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

type RefundResponse struct {
	Approved bool   `json:"approved"`
	Detail   string `json:"detail"`
}
