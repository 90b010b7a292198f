package types

type Exchange string

const (
	ExchangeSSE  Exchange = "SSE"
	ExchangeSZSE Exchange = "SZSE"
)

// Security identifies a listed stock.
type Security struct {
	Code     string   `json:"code" yaml:"code" validate:"required"`
	Name     string   `json:"name" yaml:"name"`
	Exchange Exchange `json:"exchange" yaml:"exchange" validate:"oneof=SSE SZSE"`
}
