package types

type TransactionKind string

const (
	TransactionKindBuy  TransactionKind = "buy"
	TransactionKindSell TransactionKind = "sell"
)

// Fee is the cost breakdown of one transaction.
// Total is signed: negative for buys, positive for sells.
type Fee struct {
	Total       float64 `json:"total" yaml:"total"`
	GrossAmount float64 `json:"gross_amount" yaml:"gross_amount"`
	Commission  float64 `json:"commission" yaml:"commission"`
	TransferFee float64 `json:"transfer_fee" yaml:"transfer_fee"`
	StampDuty   float64 `json:"stamp_duty" yaml:"stamp_duty"`
}

// Transaction is an immutable trade record produced by a rule.
type Transaction struct {
	// SequenceID pairs a buy with the sell that closes it. Assigned by the simulation driver.
	SequenceID int             `json:"sequence_id" yaml:"sequence_id"`
	Code       string          `json:"code" yaml:"code" validate:"required"`
	Date       TradeDate       `json:"date" yaml:"date" validate:"required"`
	DateIndex  int             `json:"date_index" yaml:"date_index" validate:"gte=0"`
	Kind       TransactionKind `json:"kind" yaml:"kind" validate:"oneof=buy sell"`
	Count      int             `json:"count" yaml:"count" validate:"gte=100"`
	Price      float64         `json:"price" yaml:"price" validate:"gt=0"`
	Fee        `yaml:",inline"`
	MethodType string `json:"method_type" yaml:"method_type"`
	Memo       string `json:"memo" yaml:"memo"`
}

func (t Transaction) IsBuy() bool {
	return t.Kind == TransactionKindBuy
}
