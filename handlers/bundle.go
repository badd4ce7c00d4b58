package handlers

import (
	userRepoPkg "salonify/database/repository/user"
	"salonify/utils"
)

// HandlerBundle groups the endpoint handlers and what their middleware needs.
type HandlerBundle struct {
	Tokens    *utils.TokenManager
	UserRepo  userRepoPkg.UserRepository
	AuthCache utils.TokenCache

	// Rate limit per client IP per minute.
	RequestsPerMinute int

	Users    *UserHandler
	Bookings *BookingHandler
	Admin    *AdminHandler
	AI       *AIHandler
	Content  *ContentHandler
	Streams  *StreamHandler
}
