package market

import (
	"fmt"
	"strconv"
	"strings"
)

// ListingInput is the raw sell-form input, all fields as typed.
type ListingInput struct {
	Name        string
	Category    string
	Price       string
	ImageURL    string
	Keywords    string
	Description string
}

// ValidationError lists every failing field of a submission. All rules
// are evaluated; the error is never cut short at the first failure, so
// the user sees the whole repair list at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Please fill in all required fields correctly: %s.", strings.Join(e.Fields, ", "))
}

// Validate checks a listing submission and returns the parsed price.
func (in ListingInput) Validate() (float64, error) {
	var fields []string

	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, "Name")
	}
	if strings.TrimSpace(in.Category) == "" {
		fields = append(fields, "Category")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil || price <= 0 {
		fields = append(fields, "Price (must be a positive number)")
	}
	if strings.TrimSpace(in.Description) == "" {
		fields = append(fields, "Description")
	}

	if len(fields) > 0 {
		return 0, &ValidationError{Fields: fields}
	}
	return price, nil
}
