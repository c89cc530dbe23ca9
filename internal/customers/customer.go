package customers

// Customer is both the stored row and the search result.
type Customer struct {
	ID           string `json:"customerID"`
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
}

// AddCustomerRequest is the message of the AddCustomer call.
type AddCustomerRequest struct {
	CustomerData Customer `json:"customerData"`
}

type SearchRequest struct {
	CompanyName string `json:"companyName"`
}

type SearchResponse struct {
	SearchResults []Customer `json:"searchResults"`
}

type ApproveRequest struct {
	ID int `json:"id"`
}
