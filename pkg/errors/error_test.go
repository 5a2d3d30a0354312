package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("invalid parameter", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeUnsupportedSymbol, "symbol %s is not tradable", "NKD")
	suite.NotNil(err)
	suite.Equal(ErrCodeUnsupportedSymbol, err.Code)
	suite.Equal("symbol NKD is not tradable", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeTransport, "failed to reach brokerage", cause)
	suite.NotNil(err)
	suite.Equal(ErrCodeTransport, err.Code)
	suite.Equal("failed to reach brokerage", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("connection refused")
	err := Wrapf(ErrCodeTransport, cause, "order for %s failed", "AAPL")
	suite.NotNil(err)
	suite.Equal(ErrCodeTransport, err.Code)
	suite.Equal("order for AAPL failed", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Equal("[100] invalid parameter", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeTransport, "failed to reach brokerage", cause)
	suite.Equal("[300] failed to reach brokerage: connection refused", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeTransport, "failed to reach brokerage", cause)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestUnwrapNil() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Nil(err.Unwrap())
}

func (suite *ErrorTestSuite) TestGetCode() {
	err := New(ErrCodeOrderRejected, "order rejected")
	suite.Equal(ErrCodeOrderRejected, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromWrapped() {
	cause := New(ErrCodeTransport, "timeout")
	err := Wrap(ErrCodeOrderRejected, "order rejected", cause)
	// GetCode should return the outermost error's code
	suite.Equal(ErrCodeOrderRejected, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromStandardError() {
	err := errors.New("standard error")
	suite.Equal(ErrCodeUnknown, GetCode(err))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeMalformedPayload, "malformed payload")
	suite.True(HasCode(err, ErrCodeMalformedPayload))
	suite.False(HasCode(err, ErrCodeTransport))
}

func (suite *ErrorTestSuite) TestIsError() {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeTransport, "failed to reach brokerage", cause)
	suite.True(Is(err, cause))
}

func (suite *ErrorTestSuite) TestAsError() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	var typedErr *Error
	suite.True(As(err, &typedErr))
	suite.Equal(ErrCodeInvalidParameter, typedErr.Code)
}

func (suite *ErrorTestSuite) TestErrorCodeValues() {
	// Verify some key error codes have expected values
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(200), ErrCodeUnsupportedSymbol)
	suite.Equal(ErrorCode(300), ErrCodeTransport)
	suite.Equal(ErrorCode(400), ErrCodeOrderRejected)
	suite.Equal(ErrorCode(500), ErrCodeMalformedPayload)
}

func (suite *ErrorTestSuite) TestUnsupportedSymbolError() {
	err := &UnsupportedSymbolError{
		Symbol:   "NKD",
		Verified: []string{"SPY", "QQQ"},
	}
	suite.Equal("NKD not in verified working symbols. Use: SPY, QQQ", err.Error())
	suite.Equal("NKD", err.Symbol)
	suite.Equal([]string{"SPY", "QQQ"}, err.Verified)
}

func (suite *ErrorTestSuite) TestNewUnsupportedSymbolError() {
	err := NewUnsupportedSymbolError("RTY", []string{"SPY", "QQQ", "AAPL"})
	suite.NotNil(err)
	suite.Equal("RTY", err.Symbol)
	suite.Len(err.Verified, 3)
}

func (suite *ErrorTestSuite) TestIsUnsupportedSymbolError() {
	unsupportedErr := NewUnsupportedSymbolError("NKD", []string{"SPY"})
	suite.True(IsUnsupportedSymbolError(unsupportedErr))

	stdErr := errors.New("standard error")
	suite.False(IsUnsupportedSymbolError(stdErr))

	codedErr := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.False(IsUnsupportedSymbolError(codedErr))

	suite.False(IsUnsupportedSymbolError(nil))
}

func (suite *ErrorTestSuite) TestIsUnsupportedSymbolErrorWrapped() {
	cause := NewUnsupportedSymbolError("NKD", []string{"SPY"})
	err := Wrap(ErrCodeUnsupportedSymbol, "resolution failed", cause)
	suite.True(IsUnsupportedSymbolError(err))
}
