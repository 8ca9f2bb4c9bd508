package model

import "encoding/json"

// ConversionResponse is the raw /api/convert payload. Success is signalled
// only by the presence of the `result` key, even when it holds null.
type ConversionResponse struct {
	Amount    *float64 `json:"amount,omitempty"`
	From      string   `json:"from,omitempty"`
	To        string   `json:"to,omitempty"`
	Result    *float64 `json:"result,omitempty"`
	Error     *string  `json:"error,omitempty"`
	hasResult bool
}

func (c *ConversionResponse) UnmarshalJSON(b []byte) error {
	type plain ConversionResponse
	var raw struct {
		plain
		Result json.RawMessage `json:"result"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*c = ConversionResponse(raw.plain)
	c.hasResult = len(raw.Result) > 0
	if c.hasResult && string(raw.Result) != "null" {
		var value float64
		if err := json.Unmarshal(raw.Result, &value); err != nil {
			return err
		}
		c.Result = &value
	}

	return nil
}

func (c ConversionResponse) ToResult() ConversionResult {
	if c.Result != nil {
		return ConversionSuccess(*c.Result)
	}

	if c.hasResult {
		return ConversionNullSuccess()
	}

	message := ""
	if c.Error != nil {
		message = *c.Error
	}

	return ConversionFailure(message)
}

type ConversionResult struct {
	success bool
	null    bool
	value   float64
	error   string
}

func ConversionSuccess(value float64) ConversionResult {
	return ConversionResult{success: true, value: value}
}

// ConversionNullSuccess is a present but null `result`.
func ConversionNullSuccess() ConversionResult {
	return ConversionResult{success: true, null: true}
}

func ConversionFailure(message string) ConversionResult {
	return ConversionResult{success: false, error: message}
}

func (c ConversionResult) IsSuccess() bool {
	return c.success
}

func (c ConversionResult) IsNull() bool {
	return c.null
}

func (c ConversionResult) Value() float64 {
	return c.value
}

// ErrorMessage is empty when the server did not say what went wrong.
func (c ConversionResult) ErrorMessage() string {
	return c.error
}
