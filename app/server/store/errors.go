package store

import (
	"errors"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"gorm.io/gorm"
)

// translate 把 gorm 的错误转换为 auth 包约定的错误，需要打开 gorm.Config.TranslateError
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", auth.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", auth.ErrDuplicate, err)
	default:
		return err
	}
}
