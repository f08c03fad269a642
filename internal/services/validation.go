package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-social-media/internal/models"
)

const (
	minPasswordLength = 4
	maxMessageLength  = 254
)

var validate = validator.New()

// accountRules holds trimmed account fields. Field order decides which rule is reported first.
type accountRules struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=4"`
}

type messageRules struct {
	MessageText string `validate:"required,max=254"`
}

// validateAccount checks the username and password rules on trimmed values.
func validateAccount(account models.Account) error {
	err := validate.Struct(accountRules{
		Username: strings.TrimSpace(account.Username),
		Password: strings.TrimSpace(account.Password),
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	switch fe := verrs[0]; {
	case fe.Field() == "Username":
		return ErrBlankUsername
	case fe.Tag() == "required":
		return ErrEmptyPassword
	default:
		return ErrPasswordTooShort
	}
}

// validateMessage checks that the trimmed text is 1 to 254 characters long.
func validateMessage(message models.Message) error {
	err := validate.Struct(messageRules{
		MessageText: strings.TrimSpace(message.MessageText),
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	if verrs[0].Tag() == "required" {
		return ErrEmptyMessageText
	}
	return ErrMessageTextTooLong
}

// checkAccountPermission allows only the posting account to act on a message.
func checkAccountPermission(account models.Account, postedBy int) error {
	if account.AccountID != postedBy {
		return ErrUnauthorized
	}
	return nil
}
