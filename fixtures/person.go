package fixtures

import (
	"time"

	"github.com/google/uuid"
)

// Person is a plain object graph with nested objects and every container.
type Person struct {
	ID         uuid.UUID
	Name       string
	Age        int
	Active     bool
	Phone      *Phone
	Address    Address
	Tags       []string
	Attributes map[string]int
	Scores     [3]float64
	CreatedAt  time.Time
	secret     string // unexported, never populated
}

// Phone is referenced by Person through a pointer.
type Phone struct {
	CountryCode string `json:"country_code"`
	Number      string `json:"number"`
}

// Address is embedded by value in Person.
type Address struct {
	Street      string
	City        string
	CountryCode string `json:"country_code"`
}

// StringAndPrimitiveFields mixes strings with numeric fields.
type StringAndPrimitiveFields struct {
	One      string
	Two      string
	Three    string
	Four     string
	IntOne   int
	IntTwo   int
	IntThree int
	IntFour  int
	Ratio    float64
	Enabled  bool
}

// Order holds a list of lines, each with a product reference.
type Order struct {
	Number string
	Lines  []OrderLine
	Notes  map[string]string
}

// OrderLine is an element of Order.Lines.
type OrderLine struct {
	SKU      string
	Quantity int
	Price    float64
}
