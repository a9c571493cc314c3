package services

import "strings"

// OTPInput - поле ввода одноразового кода из N однозначных ячеек.
// Коллбек завершения срабатывает в момент, когда изменение переводит
// поле в полностью заполненное состояние. Перезапись цифры в уже
// заполненном поле коллбек повторно не вызывает; очистка ячейки и
// повторное заполнение - вызывает
type OTPInput struct {
	digits     []string
	focus      int
	completed  bool
	onComplete func(code string)
}

func NewOTPInput(length int, onComplete func(code string)) *OTPInput {
	if length <= 0 {
		length = 4
	}
	return &OTPInput{
		digits:     make([]string, length),
		onComplete: onComplete,
	}
}

func (o *OTPInput) Length() int {
	return len(o.digits)
}

// Focus - индекс активной ячейки
func (o *OTPInput) Focus() int {
	return o.focus
}

// Digits - копия содержимого ячеек
func (o *OTPInput) Digits() []string {
	return append([]string(nil), o.digits...)
}

// Value - конкатенация введенных цифр
func (o *OTPInput) Value() string {
	return strings.Join(o.digits, "")
}

// Type вводит символ в активную ячейку. Не-цифры игнорируются.
// После ввода фокус переходит к следующей ячейке
func (o *OTPInput) Type(ch rune) {
	if ch < '0' || ch > '9' {
		return
	}
	o.digits[o.focus] = string(ch)
	o.focusNext()
	o.checkComplete()
}

// Backspace на пустой ячейке двигает фокус назад не удаляя ничего,
// на заполненной - чистит ее на месте
func (o *OTPInput) Backspace() {
	if o.digits[o.focus] == "" {
		o.focusPrev()
		return
	}
	o.digits[o.focus] = ""
	o.completed = false
}

func (o *OTPInput) ArrowLeft() {
	o.focusPrev()
}

func (o *OTPInput) ArrowRight() {
	o.focusNext()
}

// Paste заполняет ячейки слева направо с нулевого индекса и ставит фокус
// на последнюю заполненную. Строки длиннее N или с не-цифрами игнорируются
func (o *OTPInput) Paste(s string) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > len(o.digits) {
		return
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return
		}
	}

	for i, ch := range s {
		o.digits[i] = string(ch)
	}
	o.focus = len(s) - 1
	o.checkComplete()
}

func (o *OTPInput) focusNext() {
	if o.focus < len(o.digits)-1 {
		o.focus++
	}
}

func (o *OTPInput) focusPrev() {
	if o.focus > 0 {
		o.focus--
	}
}

func (o *OTPInput) checkComplete() {
	for _, d := range o.digits {
		if d == "" {
			o.completed = false
			return
		}
	}
	if o.completed {
		return
	}
	o.completed = true
	if o.onComplete != nil {
		o.onComplete(o.Value())
	}
}
