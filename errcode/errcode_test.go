package errcode

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrIs(t *testing.T) {
	assert.ErrorIs(t, ErrPriceTooLow, ErrPriceTooLow)
	assert.NotErrorIs(t, ErrPriceTooLow, ErrFeeTooHigh)

	// 包装后仍可按错误码识别
	wrapped := errors.Wrap(ErrListingNotActive, "failed on purchase parcel")
	assert.ErrorIs(t, wrapped, ErrListingNotActive)

	var bizErr *Err
	assert.True(t, errors.As(wrapped, &bizErr))
	assert.Equal(t, ErrListingNotActive.Code(), bizErr.Code())
}

func TestNewCustomErr(t *testing.T) {
	err := NewCustomErr("something odd")
	assert.Equal(t, CodeCustom, err.Code())
	assert.Equal(t, "something odd", err.Msg())
	assert.Contains(t, err.Error(), "something odd")
}
