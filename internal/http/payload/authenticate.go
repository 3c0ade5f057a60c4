package payload

import (
	"paysched/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(0, 100)),
		validation.Field(&r.Email, validation.Required, emailRule),
		// bcrypt ignores bytes past 72
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

func (r RegisterRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Email, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

type Web3AuthRequest struct {
	Signature string `json:"signature"`
	Message   string `json:"message"`
	Address   string `json:"address"`
}

func (w Web3AuthRequest) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Signature, validation.Required),
		validation.Field(&w.Message, validation.Required),
		validation.Field(&w.Address, validation.Required, addressRule),
	)
}

func (w Web3AuthRequest) ToWalletLogin() core.WalletLogin {
	return core.WalletLogin{
		Message:   w.Message,
		Signature: w.Signature,
		Address:   w.Address,
	}
}
