package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
	PasswordMinLength = 8
	EmailMaxLength    = 255
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	n := utf8.RuneCountInString(username)
	if n < UsernameMinLength || n > UsernameMaxLength {
		return false, "Username must be between 3 and 50 characters"
	}
	if strings.TrimSpace(username) != username {
		return false, "Username must not start or end with whitespace"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if utf8.RuneCountInString(password) < PasswordMinLength {
		return false, "Password must be at least 8 characters"
	}
	// bcrypt 只接受 72 字节以内的输入
	if len(password) > maxPasswordBytes {
		return false, "Password must be at most 72 bytes"
	}
	return true, ""
}

// ValidateEmail 校验邮箱格式与长度
func ValidateEmail(email string) (bool, string) {
	if email == "" || len(email) > EmailMaxLength || !emailPattern.MatchString(email) {
		return false, "Invalid email address"
	}
	return true, ""
}
