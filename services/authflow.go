package services

import (
	"context"
	"fmt"

	"socialclient/api"
	"socialclient/config"
)

type AuthTab string

const (
	TabEmail AuthTab = "email"
	TabPhone AuthTab = "phone"
)

type authMode string

const (
	modeLogin  authMode = "login"
	modeSignup authMode = "signup"
)

// AuthFlow - состояние формы входа или регистрации: вкладка email/phone,
// шаг отправки кода, окно запрета повторной отправки.
// Ошибки валидации ловятся здесь и до сети не доходят
type AuthFlow struct {
	session *SessionStore
	mode    authMode

	tab   AuthTab
	name  string
	email string
	phone string

	otpSent        bool
	resendDisabled bool
	countdown      *Countdown
}

func NewLoginFlow(session *SessionStore) *AuthFlow {
	return &AuthFlow{session: session, mode: modeLogin, tab: TabEmail}
}

func NewSignupFlow(session *SessionStore) *AuthFlow {
	return &AuthFlow{session: session, mode: modeSignup, tab: TabEmail}
}

func (f *AuthFlow) SetTab(tab AuthTab) { f.tab = tab }
func (f *AuthFlow) SetName(v string)   { f.name = v }
func (f *AuthFlow) SetEmail(v string)  { f.email = v }
func (f *AuthFlow) SetPhone(v string)  { f.phone = v }

func (f *AuthFlow) OTPSent() bool        { f.syncCountdown(); return f.otpSent }
func (f *AuthFlow) ResendDisabled() bool { f.syncCountdown(); return f.resendDisabled }
func (f *AuthFlow) Countdown() *Countdown {
	return f.countdown
}

// validate проверяет поля формы до любого сетевого вызова
func (f *AuthFlow) validate() error {
	if f.mode == modeSignup && f.name == "" {
		return fmt.Errorf("%w: name is required", api.ErrValidation)
	}
	switch f.tab {
	case TabEmail:
		if !ValidateEmail(f.email) {
			return fmt.Errorf("%w: invalid email address", api.ErrValidation)
		}
	case TabPhone:
		if !ValidatePhone(f.phone) {
			return fmt.Errorf("%w: invalid phone number", api.ErrValidation)
		}
	}
	return nil
}

// SendOTP валидирует форму и запрашивает код. Для регистрации это вызов
// /student/register, для входа код приходит без отдельного эндпоинта.
// Успех переводит форму на шаг ввода кода и запускает окно запрета resend
func (f *AuthFlow) SendOTP(ctx context.Context) error {
	if err := f.validate(); err != nil {
		return err
	}

	if f.mode == modeSignup {
		req := api.RegisterRequest{Name: f.name}
		f.fillContact(&req.Email, &req.Phone)
		if err := f.session.Register(ctx, req); err != nil {
			return err
		}
	}

	f.otpSent = true
	f.disableResend()
	return nil
}

// ResendOTP повторно запрашивает код. Внутри окна запрета - no-op
func (f *AuthFlow) ResendOTP(ctx context.Context) error {
	f.syncCountdown()
	if !f.otpSent || f.resendDisabled {
		return nil
	}

	if f.mode == modeSignup {
		req := api.RegisterRequest{Name: f.name}
		f.fillContact(&req.Email, &req.Phone)
		if err := f.session.Register(ctx, req); err != nil {
			return err
		}
	}

	f.disableResend()
	return nil
}

// VerifyOTP завершает поток. Регистрация подтверждает код, вход
// обменивает контакт и код на токен сессии
func (f *AuthFlow) VerifyOTP(ctx context.Context, code string) error {
	if !f.otpSent {
		return fmt.Errorf("%w: code was not requested", api.ErrValidation)
	}

	if f.mode == modeSignup {
		req := api.VerifyOTPRequest{OTP: code}
		f.fillContact(&req.Email, &req.Phone)
		return f.session.VerifyOTP(ctx, req)
	}

	req := api.LoginRequest{OTP: code}
	f.fillContact(&req.Email, &req.Phone)
	return f.session.Login(ctx, req)
}

func (f *AuthFlow) fillContact(email, phone *string) {
	if f.tab == TabPhone {
		*phone = f.phone
		return
	}
	*email = f.email
}

func (f *AuthFlow) disableResend() {
	f.resendDisabled = true
	f.countdown = NewCountdown(config.AppConfig.Auth.ResendCooldownSeconds, nil)
}

// syncCountdown снимает запрет resend, когда отсчет дошел до нуля
func (f *AuthFlow) syncCountdown() {
	if f.resendDisabled && f.countdown != nil && !f.countdown.Active() {
		f.resendDisabled = false
	}
}
