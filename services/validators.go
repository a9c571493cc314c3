package services

import "regexp"

// Регулярки совпадают с проверками на формах логина и регистрации
var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// ValidateEmail принимает адреса вида local@domain.tld
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePhone принимает 10-15 цифр, опционально с ведущим +
func ValidatePhone(phone string) bool {
	return phoneRe.MatchString(phone)
}
