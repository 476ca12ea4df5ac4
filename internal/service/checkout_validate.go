package service

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"
)

// ShippingForm 收货表单
type ShippingForm struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`
	Phone    string `json:"phone"`
}

// PaymentForm 支付表单，卡号等敏感字段只用于校验，不会被保存
type PaymentForm struct {
	Method         string `json:"method"`
	CardNumber     string `json:"card_number"`
	CardholderName string `json:"cardholder_name"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
}

// normalizeShippingForm 去除空白并校验必填项
func normalizeShippingForm(form ShippingForm, method string) (models.ShippingInfo, error) {
	info := models.ShippingInfo{
		Method:   strings.ToLower(strings.TrimSpace(method)),
		FullName: strings.TrimSpace(form.FullName),
		Email:    strings.TrimSpace(form.Email),
		Address:  strings.TrimSpace(form.Address),
		City:     strings.TrimSpace(form.City),
		ZipCode:  strings.TrimSpace(form.ZipCode),
		Phone:    strings.TrimSpace(form.Phone),
	}
	if _, err := ShippingCost(info.Method); err != nil {
		return info, err
	}
	required := []struct {
		field string
		value string
	}{
		{"full_name", info.FullName},
		{"email", info.Email},
		{"address", info.Address},
		{"city", info.City},
		{"zip_code", info.ZipCode},
		{"phone", info.Phone},
	}
	for _, r := range required {
		if r.value == "" {
			return info, invalidField(ErrShippingInfoInvalid, r.field)
		}
	}
	addr, err := mail.ParseAddress(info.Email)
	if err != nil || addr.Address != info.Email {
		return info, invalidField(ErrEmailInvalid, "email")
	}
	return info, nil
}

// normalizePaymentForm 校验支付表单，卡支付只保留持卡人与卡号后四位
func normalizePaymentForm(form PaymentForm, now time.Time) (models.PaymentInfo, error) {
	method := strings.ToLower(strings.TrimSpace(form.Method))
	if method == "" {
		method = constants.PaymentMethodCard
	}
	switch method {
	case constants.PaymentMethodPayPal, constants.PaymentMethodApplePay, constants.PaymentMethodGooglePay:
		return models.PaymentInfo{Method: method}, nil
	case constants.PaymentMethodCard:
	default:
		return models.PaymentInfo{}, invalidField(ErrPaymentInvalid, "method")
	}

	digits := stripCardNumber(form.CardNumber)
	if len(digits) < 12 || len(digits) > 19 {
		return models.PaymentInfo{}, invalidField(ErrPaymentInvalid, "card_number")
	}
	holder := strings.TrimSpace(form.CardholderName)
	if holder == "" {
		return models.PaymentInfo{}, invalidField(ErrPaymentInvalid, "cardholder_name")
	}
	if !validCardExpiry(form.Expiry, now) {
		return models.PaymentInfo{}, invalidField(ErrPaymentInvalid, "expiry")
	}
	cvv := strings.TrimSpace(form.CVV)
	if len(cvv) < 3 || len(cvv) > 4 || !allDigits(cvv) {
		return models.PaymentInfo{}, invalidField(ErrPaymentInvalid, "cvv")
	}
	return models.PaymentInfo{
		Method:         method,
		CardholderName: holder,
		CardLast4:      digits[len(digits)-4:],
	}, nil
}

// stripCardNumber 去掉空格与短横线，含其他字符时返回空
func stripCardNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
		default:
			return ""
		}
	}
	return b.String()
}

// validCardExpiry 校验 MM/YY，当月仍视为有效
func validCardExpiry(raw string, now time.Time) bool {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	year += 2000
	// 到期月份的下个月 1 日零点之前有效
	expiresAt := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, now.Location())
	return now.Before(expiresAt)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
