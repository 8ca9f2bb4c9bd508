package service

import (
	"context"
	"fmt"

	"gitlab.com/open-soft/go-crypto-dashboard/src/client"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
)

const ConvertErrorPrefix = "Error: "
const ConvertUnknownError = "unknown"
const ConvertNullResult = "null"

type Converter struct {
	API       client.DashboardAPIInterface
	Formatter *utils.Formatter
}

// Convert returns the text for the converter output. A transport failure is
// returned as an error and leaves the output untouched.
func (c *Converter) Convert(ctx context.Context, amountInput string, from string, to string) (string, error) {
	amount := c.Formatter.ParseAmount(amountInput)

	result, err := c.API.Convert(ctx, amount, from, to)
	if err != nil {
		return "", err
	}

	return c.Display(amount, from, to, result), nil
}

func (c *Converter) Display(amount float64, from string, to string, result model.ConversionResult) string {
	if result.IsSuccess() {
		value := ConvertNullResult
		if !result.IsNull() {
			value = c.Formatter.FormatNumber(result.Value())
		}

		return fmt.Sprintf(
			"%s %s ≈ %s %s",
			c.Formatter.FormatNumber(amount),
			from,
			value,
			to,
		)
	}

	message := result.ErrorMessage()
	if message == "" {
		message = ConvertUnknownError
	}

	return ConvertErrorPrefix + message
}
