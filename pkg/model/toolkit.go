package model

// MarkdownRequest is capped well below the body limit: deeply nested input costs one
// full pass per nesting level, and 8 KiB keeps that worst case near a second.
type MarkdownRequest struct {
	Markdown string `json:"markdown" validate:"max=8192"`
}

type TextResponse struct {
	Text string `json:"text"`
}

type BytesRequest struct {
	Bytes NumericString `json:"bytes" validate:"max=128"`
}

type DecimalRequest struct {
	Value    NumericString `json:"value" validate:"max=128"`
	Decimals *int          `json:"decimals,omitempty" validate:"omitempty,min=0,max=77"`
}

type FormattedResponse struct {
	Formatted string `json:"formatted"`
}

type FractionRequest struct {
	Numerator   *int64 `json:"numerator" validate:"required"`
	Denominator *int64 `json:"denominator" validate:"required"`
}

type FractionResponse struct {
	Fraction string `json:"fraction"`
}

type HexRequest struct {
	Hex string `json:"hex" validate:"max=1048576"`
}

type Base64Request struct {
	Text string `json:"text" validate:"max=1048576"`
}

type EncodedResponse struct {
	Encoded string `json:"encoded"`
}

type DuplicatesRequest struct {
	Items []string `json:"items" validate:"max=10000"`
}

type DuplicatesResponse struct {
	HasDuplicates bool `json:"has_duplicates"`
}

type NonEmptyRequest struct {
	Value *string `json:"value"`
}

type NonEmptyResponse struct {
	NonEmpty bool `json:"non_empty"`
}

type ContractResponse struct {
	Kind      string `json:"kind"`
	NetworkID int64  `json:"network_id"`
	Address   string `json:"address"`
}

type ActorAddressResponse struct {
	Address string `json:"address"`
}
