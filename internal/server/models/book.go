package models

// Book is an inventory item owned by a seller. SellerID always references
// an existing seller row.
type Book struct {
	ID       int64
	Title    string
	Author   string
	Year     int
	Pages    int
	SellerID int64
}
