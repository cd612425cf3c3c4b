package domain

type Customer struct {
	CustomerID string   `json:"customer_id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Contact    string   `json:"contact"`
	Accounts   []string `json:"accounts"`
}

func NewCustomer(customerID, name, address, contact string) Customer {
	return Customer{
		CustomerID: customerID,
		Name:       name,
		Address:    address,
		Contact:    contact,
		Accounts:   []string{},
	}
}
