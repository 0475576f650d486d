package handler

// productRequest is shared by product create and update; both carry the full
// field set. Cost divisibility by 5 is a domain rule checked in the service.
type productRequest struct {
	ProductName     string `json:"productName"     validate:"required,min=3,max=32"`
	Cost            int    `json:"cost"            validate:"required,gte=5,lte=250"`
	AmountAvailable int    `json:"amountAvailable" validate:"gte=0,lte=42"`
}
