package services

import (
	"fmt"
	"guild-warden/domain"
	"guild-warden/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateCommand(cmd domain.Command) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	return nil
}
