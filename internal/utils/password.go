package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt 只使用前 72 字节，超出部分会导致 GenerateFromPassword 返回错误
const maxPasswordBytes = 72

// HashPassword 生成带随机盐的 bcrypt 摘要，同一密码每次结果不同。
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 校验密码与摘要是否匹配；摘要格式错误时返回 false。
func CheckPassword(password, digest string) bool {
	if digest == "" || len(password) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
