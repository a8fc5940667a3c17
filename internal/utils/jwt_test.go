package utils

import (
	"errors"
	"testing"
	"time"

	"photo-catalog-server/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenService() *TokenService {
	return NewTokenService(config.JWTConfig{
		Secret:                   "test_secret",
		Issuer:                   "photo-catalog-test",
		AccessTokenExpireMinutes: 30,
		RefreshTokenExpireDays:   7,
	})
}

// 测试内容：验证 access token 签发后可解析出正确的用户与类型。
func TestAccessToken_RoundTrip(t *testing.T) {
	s := newTestTokenService()
	token, err := s.IssueAccessToken(123)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}
	claims, err := s.ValidateAs(token, TokenTypeAccess)
	if err != nil {
		t.Fatalf("ValidateAs error: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != 123 {
		t.Fatalf("期望用户 123，实际为 %d (%v)", id, err)
	}
	if claims.Subject != "123" || claims.ID == "" {
		t.Fatalf("非预期 claims: %+v", claims)
	}
	if ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time); ttl != 30*time.Minute {
		t.Fatalf("期望 access 有效期 30 分钟，实际为 %v", ttl)
	}
}

// 测试内容：验证 access 与 refresh token 不可互换。
func TestValidateAs_RejectsWrongType(t *testing.T) {
	s := newTestTokenService()
	pair, err := s.IssuePair(7)
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}
	if pair.TokenType != "bearer" {
		t.Fatalf("期望 token_type=bearer，实际为 %q", pair.TokenType)
	}
	if _, err := s.ValidateAs(pair.AccessToken, TokenTypeRefresh); !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("期望 access 被当作 refresh 时报类型错误，实际为 %v", err)
	}
	if _, err := s.ValidateAs(pair.RefreshToken, TokenTypeAccess); !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("期望 refresh 被当作 access 时报类型错误，实际为 %v", err)
	}
	claims, err := s.ValidateAs(pair.RefreshToken, TokenTypeRefresh)
	if err != nil {
		t.Fatalf("refresh 校验失败: %v", err)
	}
	if ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time); ttl != 7*24*time.Hour {
		t.Fatalf("期望 refresh 有效期 7 天，实际为 %v", ttl)
	}
}

// 测试内容：验证过期 token 被拒绝。
func TestValidate_Expired(t *testing.T) {
	s := newTestTokenService()
	token, err := s.Issue(1, TokenTypeAccess, -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := s.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("期望过期 token 返回 ErrInvalidToken，实际为 %v", err)
	}
}

// 测试内容：验证其他密钥签名、篡改、格式错误与非 HS256 算法的 token 均被拒绝。
func TestValidate_RejectsForgedAndMalformed(t *testing.T) {
	s := newTestTokenService()
	other := NewTokenService(config.JWTConfig{Secret: "other_secret", Issuer: "photo-catalog-test"})

	forged, _ := other.IssueAccessToken(1)
	if _, err := s.Validate(forged); err == nil {
		t.Fatalf("期望其他密钥签名的 token 被拒绝")
	}

	good, _ := s.IssueAccessToken(1)
	tampered := good[:len(good)-2] + "xx"
	for _, tok := range []string{"", "garbage", "a.b.c", tampered} {
		if _, err := s.Validate(tok); err == nil {
			t.Fatalf("期望 %q 被拒绝", tok)
		}
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{
		Type: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    "photo-catalog-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("签发 none token 失败: %v", err)
	}
	if _, err := s.Validate(unsigned); err == nil {
		t.Fatalf("期望 alg=none 的 token 被拒绝")
	}
}

// 测试内容：验证缺少 exp、非法 subject、未知类型与错误签发者的 token 被拒绝。
func TestValidate_RejectsBadClaims(t *testing.T) {
	s := newTestTokenService()
	sign := func(claims TokenClaims) string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret"))
		if err != nil {
			t.Fatalf("签名失败: %v", err)
		}
		return tok
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	cases := map[string]TokenClaims{
		"no exp":       {Type: TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: "photo-catalog-test"}},
		"bad subject":  {Type: TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "abc", Issuer: "photo-catalog-test", ExpiresAt: exp}},
		"zero subject": {Type: TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "0", Issuer: "photo-catalog-test", ExpiresAt: exp}},
		"unknown type": {Type: "email_verify", RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: "photo-catalog-test", ExpiresAt: exp}},
		"bad issuer":   {Type: TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: "someone-else", ExpiresAt: exp}},
	}
	for name, claims := range cases {
		if _, err := s.Validate(sign(claims)); err == nil {
			t.Fatalf("%s: 期望 token 被拒绝", name)
		}
	}
}

// 测试内容：验证同一用户连续签发的 token 互不相同（jti 唯一）。
func TestIssue_UniquePerCall(t *testing.T) {
	s := newTestTokenService()
	a, _ := s.IssueRefreshToken(5)
	b, _ := s.IssueRefreshToken(5)
	if a == b {
		t.Fatalf("期望每次签发的 token 不同")
	}
	if _, err := s.Issue(0, TokenTypeAccess, time.Minute); err == nil {
		t.Fatalf("期望用户 ID 为 0 时签发失败")
	}
}
