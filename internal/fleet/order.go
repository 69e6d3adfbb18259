package fleet

import "time"

// Order is a customer purchase tracked through fulfilment stages. Manager and
// Driver hold display names, not references to staff records.
type Order struct {
	ID      string
	Code    string
	Client  string
	Items   int
	Total   Amount
	Status  OrderStatus
	Manager string
	Driver  string
	Date    time.Time
}

// Amount is a monetary value in cents.
type Amount int64

// Dollars returns the amount as a float for display formatting.
func (a Amount) Dollars() float64 {
	return float64(a) / 100
}

// Matches reports whether query appears in the order code, client, manager, or driver.
func (o Order) Matches(query string) bool {
	return matchesAny(query, o.Code, o.Client, o.Manager, o.Driver)
}

// OrderFilter narrows an order listing. Zero values match everything.
type OrderFilter struct {
	Query  string
	Status OrderStatus
}

// Matches reports whether o passes the filter.
func (f OrderFilter) Matches(o Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	return o.Matches(f.Query)
}
