package response

import "github.com/eventdesk/eventdesk/internal/domain"

// LoginResponse returns the API token alongside the account it was issued
// for.
type LoginResponse struct {
	Token   string         `json:"token"`
	Account domain.Account `json:"account"`
}
