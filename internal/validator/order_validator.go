package validator

import (
	"strings"

	"crosstop/internal/domain/model"
	"crosstop/internal/usecase"
)

type orderValidator struct{}

// Usecaseは interface を依存注入
func NewOrderValidator() usecase.OrderValidator {
	return &orderValidator{}
}

// 注文フォームの必須チェック。欠けた項目をまとめて返す
func (v *orderValidator) ValidateOrder(in usecase.OrderInput) error {
	fields := map[string]string{}

	if strings.TrimSpace(in.FirstName) == "" {
		fields["first_name"] = "required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["last_name"] = "required"
	}
	if strings.TrimSpace(in.Phone) == "" {
		fields["phone"] = "required"
	}

	switch model.BuyingType(in.BuyingType) {
	case model.BuyingTypeSelf, model.BuyingTypeDelivery:
	default:
		fields["buying_type"] = "invalid choice"
	}

	switch model.DeliveryChoice(in.DeliveryChoice) {
	case model.DeliveryNovaPoshta, model.DeliveryUkrPoshta, model.DeliveryIntime:
	default:
		fields["delivery_choice"] = "invalid choice"
	}

	if len(fields) > 0 {
		return usecase.NewValidationError(fields)
	}
	return nil
}
