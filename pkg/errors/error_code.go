package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInsufficientData     ErrorCode = 102
	ErrCodeInvalidType          ErrorCode = 103
	ErrCodeInvalidPeriod        ErrorCode = 104
	ErrCodeMissingParameter     ErrorCode = 105
	ErrCodeInvalidMultiplier    ErrorCode = 106
	ErrCodeInvalidThreshold     ErrorCode = 107
	ErrCodeInvalidPriceSource   ErrorCode = 108
	ErrCodeInvalidMAType        ErrorCode = 109
	ErrCodeInvalidTransaction   ErrorCode = 110

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202
	ErrCodeNoBarData             ErrorCode = 203
	ErrCodeCacheFailed           ErrorCode = 204

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeIndicatorCalculation   ErrorCode = 302

	// Rule errors (400-499)
	ErrCodeRuleNotFound      ErrorCode = 400
	ErrCodeRuleConfigError   ErrorCode = 401
	ErrCodeRuleAlreadyExists ErrorCode = 402
	ErrCodeRuleReportFailed  ErrorCode = 403

	// Settlement errors (500-599)
	ErrCodeInsufficientFunds ErrorCode = 500
	ErrCodeSequenceMismatch  ErrorCode = 501
	ErrCodeEmptyTransaction  ErrorCode = 502

	// Backtest errors (600-699)
	ErrCodeBacktestStateNil     ErrorCode = 600
	ErrCodeBacktestInitFailed   ErrorCode = 601
	ErrCodeBacktestConfigError  ErrorCode = 602
	ErrCodeBacktestNoRules      ErrorCode = 603
	ErrCodeBacktestNoResultsDir ErrorCode = 604
	ErrCodeBacktestNoDatasource ErrorCode = 605
	ErrCodeBacktestWriteFailed  ErrorCode = 606

	// Callback errors (800-899)
	ErrCodeCallbackFailed ErrorCode = 800
)
