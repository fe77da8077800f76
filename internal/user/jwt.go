package user

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JwtCustomClaims struct {
	Id    uint `json:"id"`
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

var GenerateJWT = func(id uint, admin bool) (string, error) {
	claims := JwtCustomClaims{
		Id:    id,
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
