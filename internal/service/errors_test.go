package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err   error
		code  int
		known bool
	}{
		{ErrContentNotFound, NotFound, true},
		{ErrSlugExist, Conflict, true},
		{ErrSlugEmpty, BadRequest, true},
		{invalid("page=%d", 0), BadRequest, true},
		{fmt.Errorf("wrap: %w", ErrUserNotFound), NotFound, true},
		{UnExpectedError, InternalServerError, true},
		{errors.New("driver: bad connection"), InternalServerError, false},
	}
	for _, tt := range tests {
		code, known := CodeOf(tt.err)
		assert.Equal(t, tt.code, code, tt.err.Error())
		assert.Equal(t, tt.known, known, tt.err.Error())
	}
}

func TestTranslateStoreError(t *testing.T) {
	assert.Nil(t, translateStoreError(nil, ErrSlugExist, nil))
	assert.Equal(t, ErrSlugExist, translateStoreError(gorm.ErrDuplicatedKey, ErrSlugExist, ErrUserNotFound))
	assert.Equal(t, ErrUserNotFound, translateStoreError(gorm.ErrForeignKeyViolated, ErrSlugExist, ErrUserNotFound))
	assert.Equal(t, gorm.ErrForeignKeyViolated, translateStoreError(gorm.ErrForeignKeyViolated, ErrSlugExist, nil))
}
