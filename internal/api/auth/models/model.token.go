// Package models - JwtToken thuộc domain auth.
package models

import "github.com/dgrijalva/jwt-go"

// JwtToken chứa data được mã hóa trong JWT token.
type JwtToken struct {
	UserID int64  `json:"userId"`
	Type   string `json:"type"` // user | seller | admin
	jwt.StandardClaims
}
