package order

// Order statuses. Pending orders can move to done or rejected, once,
// through an admin action; nothing else transitions.
const (
	StatusPending  = "pending"
	StatusDone     = "done"
	StatusRejected = "rejected"
)

// Order is one buyer enquiry for a product. Buyer details live on the row
// itself; the joined product fields are filled by list queries for the
// admin screens.
type Order struct {
	ID          int    `json:"orderId"`
	ProductID   int    `json:"productId"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`

	ProductName  string `json:"productName,omitempty"`
	CategoryID   int    `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

// Filter narrows the admin order list. Zero values mean "no filter".
type Filter struct {
	Query      string
	CategoryID int
	Status     string
}
