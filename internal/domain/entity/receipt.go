package entity

// ReceiptHeader holds the workshop header printed at the top of a receipt.
type ReceiptHeader struct {
	WorkshopName string `json:"workshop_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	TaxID        string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity; it is composed from invoice data at print time.
type Receipt struct {
	Header    ReceiptHeader `json:"header"`
	InvoiceNo string        `json:"invoice_no"`
	Date      string        `json:"date"`
	Client    string        `json:"client,omitempty"`
	Items     []ReceiptItem `json:"items"`
	SubTotal  float64       `json:"sub_total"`
	Extra     float64       `json:"extra"`
	Total     float64       `json:"total"`
}
