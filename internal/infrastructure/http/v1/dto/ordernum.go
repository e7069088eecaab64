package dto

import (
	"sellpoint/internal/core/ordernum"
)

// GenerateNumberRequest configures one allocation.
type GenerateNumberRequest struct {
	Format         string `json:"format" binding:"required"`
	OutletID       int64  `json:"outletId" binding:"required,min=1"`
	Prefix         string `json:"prefix"`
	SequenceLength int    `json:"sequenceLength" binding:"min=0"`
	RandomLength   int    `json:"randomLength" binding:"min=0"`
	NumericOnly    bool   `json:"numericOnly"`
}

// ToConfig converts the request to a generation config.
func (r GenerateNumberRequest) ToConfig() ordernum.Config {
	return ordernum.Config{
		Format:         ordernum.Format(r.Format),
		OutletID:       r.OutletID,
		Prefix:         r.Prefix,
		SequenceLength: r.SequenceLength,
		RandomLength:   r.RandomLength,
		NumericOnly:    r.NumericOnly,
	}
}

// GenerateNumberResponse is the allocation outcome.
type GenerateNumberResponse struct {
	OrderNumber string `json:"orderNumber"`
	Sequence    int64  `json:"sequence"`
	GeneratedAt string `json:"generatedAt"`
}

// FromResult converts an allocation result.
func FromResult(res *ordernum.Result) GenerateNumberResponse {
	return GenerateNumberResponse{
		OrderNumber: res.Number,
		Sequence:    res.Sequence,
		GeneratedAt: res.GeneratedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// ValidateNumberRequest asks for a structural check of one identifier.
type ValidateNumberRequest struct {
	Number string `json:"number" binding:"required"`
	Prefix string `json:"prefix"`
}

// CompareFormatsRequest selects the outlet and prefix for format probes.
type CompareFormatsRequest struct {
	OutletID int64  `form:"outletId" binding:"required,min=1"`
	Prefix   string `form:"prefix"`
}

// CompareFormatsResponse lists one probe per format.
type CompareFormatsResponse struct {
	OutletID int64                  `json:"outletId"`
	Formats  []ordernum.FormatProbe `json:"formats"`
}
