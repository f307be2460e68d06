package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// AuthCookieName carries the signed session token. The home feed cache
// also varies on it, so anonymous and signed-in visitors never share a
// cached page.
const AuthCookieName = "inklet_session"

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func NewAccount(name, nick, email, password string) (models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("unable to hash password: %v", err)
	}

	account := models.Account{
		Name:     name,
		Nick:     nick,
		Email:    email,
		Password: string(hash),
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func CheckLogin(name, password string) (models.Account, error) {
	account, err := GetAccount(name)
	if err != nil {
		return account, fmt.Errorf("account was not found: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return account, fmt.Errorf("invalid credentials")
	}
	return account, nil
}

func authSecret() []byte {
	secret := viper.GetString("security.jwt_secret")
	if len(secret) == 0 {
		secret = "inklet-insecure-secret"
	}
	return []byte(secret)
}

func MintToken(account models.Account) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(account.ID)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(authSecret())
}

// Authenticate resolves a session token into the acting account.
func Authenticate(tokenString string) (models.Account, error) {
	var account models.Account

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return authSecret(), nil
	})
	if err != nil || !token.Valid {
		return account, fmt.Errorf("invalid session token")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return account, fmt.Errorf("invalid subject in session token")
	}

	return GetAccountWithID(uint(id))
}
